//go:build !rbox_release

package rbox

// debugBuild enables the validation layer and the ownership ledger.
// Build with -tags rbox_release to compile them out.
const debugBuild = true
