package recording

import "strings"

// MethodClass groups traced methods by how capture and replay treat them.
type MethodClass uint8

const (
	// Calls with no special handling
	MethodPlain MethodClass = iota // Replayed as recorded

	// Calls whose return value is a new handle
	MethodCreate     // create*: returns a new resource
	MethodLookup     // getExtension, getUniformLocation
	MethodContext    // getContext: returns the rendering context
	MethodBulkLookup // getUniformIndices: returns a list

	// Calls that touch pixel transfer
	MethodPixelStore // pixelStorei: updates unpack state
	MethodSubImage3D // texSubImage3D: source buffer is trimmed
)

// methodClassNames maps MethodClass values to their string representation.
var methodClassNames = [...]string{
	MethodPlain:      "Plain",
	MethodCreate:     "Create",
	MethodLookup:     "Lookup",
	MethodContext:    "Context",
	MethodBulkLookup: "BulkLookup",
	MethodPixelStore: "PixelStore",
	MethodSubImage3D: "SubImage3D",
}

// String returns the string representation of a MethodClass.
func (c MethodClass) String() string {
	if int(c) < len(methodClassNames) {
		return methodClassNames[c]
	}
	return "Unknown"
}

// BindsReturn reports whether replay binds the recorded return id to the
// live return value.
func (c MethodClass) BindsReturn() bool {
	switch c {
	case MethodCreate, MethodLookup, MethodContext:
		return true
	}
	return false
}

// Classify returns the class of a traced method name.
func Classify(method string) MethodClass {
	switch method {
	case "getContext":
		return MethodContext
	case "getExtension", "getUniformLocation":
		return MethodLookup
	case "getUniformIndices":
		return MethodBulkLookup
	case "pixelStorei":
		return MethodPixelStore
	case "texSubImage3D":
		return MethodSubImage3D
	}
	if strings.HasPrefix(method, "create") {
		return MethodCreate
	}
	return MethodPlain
}
