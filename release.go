//go:build rbox_release

package rbox

const debugBuild = false
