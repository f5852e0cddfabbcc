package storage

import "github.com/hupe1980/numvec/element"

// MapConvertTo writes f(element) into a same-length destination of a
// different element type. Dispatch rides the enumeration contract: with
// AllowSkipZeros only the source's non-zero entries are visited (the caller
// asserts f(0) == 0 in U), with IncludeZeros every element is.
func MapConvertTo[T, U element.Number](src Storage[T], dst Storage[U], f func(T) U, zeros ZeroHandling, existing ExistingData) {
	if zeros == AllowSkipZeros {
		if existing == Clear {
			dst.Clear()
		}
		for i, v := range src.NonZeroElementsIndexed() {
			dst.SetAt(i, f(v))
		}
		return
	}
	for i, v := range src.ElementsIndexed() {
		dst.SetAt(i, f(v))
	}
}

// MapIndexedConvertTo is MapConvertTo for index-aware functions. With
// AllowSkipZeros the caller asserts f(i, 0) == 0 for every index i.
func MapIndexedConvertTo[T, U element.Number](src Storage[T], dst Storage[U], f func(int, T) U, zeros ZeroHandling, existing ExistingData) {
	if zeros == AllowSkipZeros {
		if existing == Clear {
			dst.Clear()
		}
		for i, v := range src.NonZeroElementsIndexed() {
			dst.SetAt(i, f(i, v))
		}
		return
	}
	for i, v := range src.ElementsIndexed() {
		dst.SetAt(i, f(i, v))
	}
}
