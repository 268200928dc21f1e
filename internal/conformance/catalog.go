package conformance

// Catalog returns every check in the suite, in catalog order. Ordering is
// stable so `conformance list` output and sequential runs are deterministic;
// it carries no execution dependency between checks.
func Catalog() []Check {
	var all []Check
	all = append(all, nodeChecks()...)
	all = append(all, stateChecks()...)
	all = append(all, blockChecks()...)
	all = append(all, txChecks()...)
	all = append(all, callChecks()...)
	all = append(all, contractChecks()...)
	return all
}
