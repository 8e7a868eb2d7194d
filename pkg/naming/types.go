package naming

// typePrefixes maps C types to their Hungarian-style prefix.
var typePrefixes = map[string]string{
	"int8_t":   "i8",
	"int16_t":  "i16",
	"int32_t":  "i32",
	"int64_t":  "i64",
	"uint8_t":  "u8",
	"uint16_t": "u16",
	"uint32_t": "u32",
	"uint64_t": "u64",
	"char":     "c",
	"float":    "f",
	"double":   "d",
	"bool":     "b",
	"size_t":   "sz",
}

// arrayPrefix is prepended to the element prefix for arrays.
const arrayPrefix = "a"

// TypePrefix returns the prefix for a C type, or "" for unknown types. Arrays
// get "a" followed by the element prefix, so an array of an unknown type is
// still marked.
func TypePrefix(ctype string, array bool) string {
	p := typePrefixes[ctype]
	if array {
		return arrayPrefix + p
	}
	return p
}
