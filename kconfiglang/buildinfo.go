package kconfiglang

// Baked in at build time with the linker:
//
//	go build -ldflags "-X github.com/Pix4D/kconfig-lang/kconfiglang.buildinfo=v1.2.3"
var buildinfo = "unknown"

// BuildInfo returns human-readable build information (tag, git commit, date, ...).
func BuildInfo() string {
	return "kconfig-lang, the Kconfig.projbuild language switcher. " + buildinfo
}
