package dict

// ExtraMetadataVersion returns the version tag of the out-of-band metadata
// blob attached to the table, discarding the payload. Returns 0 when the
// table carries no versioned metadata or when retrieval fails; callers must
// treat 0 as "not present" and cannot distinguish the two.
func ExtraMetadataVersion(tab Table) uint32 {
	version, _, err := tab.ExtraMetadata()
	if err != nil {
		return 0
	}
	return version
}
