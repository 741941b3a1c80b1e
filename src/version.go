package wlan

import (
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
)

// Set at build time via `-ldflags "-X 'github.com/doismellburning/wlanphy/src.Version=X'"`
var Version string

func buildSetting(bi *debug.BuildInfo, key string, defaultValue string) string {
	for _, bs := range bi.Settings {
		if bs.Key == key {
			return bs.Value
		}
	}

	return defaultValue
}

// versionString describes the build, from Version and whatever the Go
// toolchain recorded about the source tree.
func versionString(bi *debug.BuildInfo) string {
	var version = Version
	if version == "" {
		version = bi.Main.Version
	}
	if version == "" || version == "(devel)" {
		version = "!UNKNOWN!"
	}

	var revision = buildSetting(bi, "vcs.revision", "UNKNOWN")
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if dirty, err := strconv.ParseBool(buildSetting(bi, "vcs.modified", "false")); err == nil && dirty {
		revision += "-DIRTY"
	}

	return fmt.Sprintf("wlanphy - Version %s (revision %s, built at %s, %s)",
		version, revision, buildSetting(bi, "vcs.time", "UNKNOWN"), IfThenElse(bi.GoVersion != "", bi.GoVersion, "go?"))
}

func printVersion(w io.Writer, verbose bool) {
	var bi, ok = debug.ReadBuildInfo()
	if !ok {
		bi = &debug.BuildInfo{}
	}

	fmt.Fprintln(w, versionString(bi))

	if verbose {
		for _, dep := range bi.Deps {
			fmt.Fprintf(w, "  %s %s\n", dep.Path, dep.Version)
		}
	}
}
