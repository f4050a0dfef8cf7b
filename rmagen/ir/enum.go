// Package ir defines the axis tables of the typed RMA surface: element types,
// execution granularities, and operation families.
package ir

// Granularity identifies the set of GPU threads that collectively make one call.
type Granularity int

const (
	PerWave      Granularity = iota // All threads of a wave (wavefront)
	PerWorkgroup                    // All threads of a workgroup
)

// Granularities returns every granularity in emission order.
func Granularities() []Granularity {
	return []Granularity{PerWave, PerWorkgroup}
}

// String returns the Go name of the granularity.
func (g Granularity) String() string {
	switch g {
	case PerWave:
		return "PerWave"
	case PerWorkgroup:
		return "PerWorkgroup"
	default:
		return "Unknown"
	}
}

// Valid reports whether g is one of the declared granularities.
func (g Granularity) Valid() bool {
	return g == PerWave || g == PerWorkgroup
}

// Tag returns the lowercase suffix used in symbol names ("wave" or "wg").
func (g Granularity) Tag() string {
	switch g {
	case PerWave:
		return "wave"
	case PerWorkgroup:
		return "wg"
	default:
		return ""
	}
}

// Phrase returns the granularity as it reads in documentation prose.
func (g Granularity) Phrase() string {
	switch g {
	case PerWave:
		return "per-wave"
	case PerWorkgroup:
		return "per-workgroup (WG)"
	default:
		return ""
	}
}

// Participants names the thread group that must call in together.
func (g Granularity) Participants() string {
	switch g {
	case PerWave:
		return "wave"
	case PerWorkgroup:
		return "workgroup"
	default:
		return ""
	}
}

// OperationFamily identifies one kind of RMA operation.
type OperationFamily int

const (
	Put            OperationFamily = iota // Blocking put
	Get                                   // Blocking get
	PutNonBlocking                        // Non-blocking put (put_nbi)
	GetNonBlocking                        // Non-blocking get (get_nbi)
)

// Families returns every operation family in emission order.
func Families() []OperationFamily {
	return []OperationFamily{Put, Get, PutNonBlocking, GetNonBlocking}
}

// String returns the Go name of the family.
func (f OperationFamily) String() string {
	switch f {
	case Put:
		return "Put"
	case Get:
		return "Get"
	case PutNonBlocking:
		return "PutNonBlocking"
	case GetNonBlocking:
		return "GetNonBlocking"
	default:
		return "Unknown"
	}
}

// Valid reports whether f is one of the declared families.
func (f OperationFamily) Valid() bool {
	switch f {
	case Put, Get, PutNonBlocking, GetNonBlocking:
		return true
	}
	return false
}

// Fragment returns the symbol-name fragment ("put", "get", "put_nbi", "get_nbi").
func (f OperationFamily) Fragment() string {
	switch f {
	case Put:
		return "put"
	case Get:
		return "get"
	case PutNonBlocking:
		return "put_nbi"
	case GetNonBlocking:
		return "get_nbi"
	default:
		return ""
	}
}

// IsPut reports whether data moves from the calling PE to the remote PE.
func (f OperationFamily) IsPut() bool {
	return f == Put || f == PutNonBlocking
}

// IsBlocking reports whether the call returns only after completion.
func (f OperationFamily) IsBlocking() bool {
	return f == Put || f == Get
}

// Verb returns the leading verb used in the brief documentation line.
func (f OperationFamily) Verb() string {
	if f.IsPut() {
		return "Writes"
	}
	return "Reads"
}
