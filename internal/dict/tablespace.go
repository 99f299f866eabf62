package dict

// TableTablespaceName returns the table's tablespace name. The dictionary
// reports "no tablespace" as a zero-length name, so ok is false when the raw
// name is empty, regardless of whether an internal id is set.
func TableTablespaceName(tab Table) (string, bool) {
	name := tab.TablespaceName()
	if name == "" {
		return "", false
	}
	return name, true
}

// ResolveTablespaceName returns the table's tablespace name, falling back to
// a dictionary lookup by id when the handle carries no resolved name. A
// failing fallback lookup yields the empty string rather than an error;
// callers cannot tell failure from absence.
func ResolveTablespaceName(d Dictionary, tab Table) string {
	name := tab.TablespaceName()
	if name != "" {
		return name
	}
	id, ok := tab.TablespaceID()
	if !ok {
		return ""
	}
	ts, err := d.TablespaceByID(id)
	if err != nil {
		return ""
	}
	return ts.Name
}
