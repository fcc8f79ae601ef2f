package service

import (
	"stripe-account-reconciler/internal/attrtree"
)

// AccountDiff computes the minimal account-update tree between the freshly
// built profile and the tree reconstructed from the previous snapshot, then
// applies the processor's resubmission quirks on top of the raw diff.
func AccountDiff(current, previous attrtree.Tree) attrtree.Tree {
	d := attrtree.Diff(current, previous)

	forceFullDOB(d, current, "individual", "dob")

	// Switching a full SSN/EIN in while a last-4 was on file: the processor
	// rejects updates that carry both identifiers at once.
	if _, ok := d.Get("individual", "id_number"); ok {
		d.Delete("individual", "ssn_last_4")
	}

	// Downgrading company -> individual leaves the old company name on the
	// remote account. Overwrite it with the individual's name so statements
	// and payout descriptors stay correct.
	if bt, ok := d.Get("business_type"); ok && bt == remoteBusinessTypeIndividual {
		if name, ok := current.Get("business_profile", "name"); ok {
			d.Set(name, "company", "name")
		}
	}

	return d.Prune()
}

// PersonDiff computes the minimal person-update tree. Person resources live
// at the top level, so the date-of-birth rule applies at the root.
func PersonDiff(current, previous attrtree.Tree) attrtree.Tree {
	d := attrtree.Diff(current, previous)
	forceFullDOB(d, current, "dob")
	return d.Prune()
}

// forceFullDOB replaces a partial date-of-birth diff with the complete block
// from current. The processor validates dob as a unit and rejects partial
// submissions.
func forceFullDOB(d, current attrtree.Tree, path ...string) {
	changed := d.Subtree(path...)
	if changed.IsEmpty() {
		return
	}
	full := current.Subtree(path...)
	if full.IsEmpty() {
		return
	}
	d.Set(full.Clone(), path...)
}
