package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/josephspurrier/goversioninfo"
	"github.com/kvark128/FolioCore/internal/config"
)

// fileVersion turns a dotted date version into the numeric version of the
// resource. Missing or malformed parts are zero.
func fileVersion(v string) goversioninfo.FileVersion {
	var nums [4]int
	for i, part := range strings.SplitN(v, ".", 4) {
		n, err := strconv.Atoi(part)
		if err == nil {
			nums[i] = n
		}
	}
	return goversioninfo.FileVersion{Major: nums[0], Minor: nums[1], Patch: nums[2], Build: nums[3]}
}

func main() {
	flagManifest := flag.String("manifest", "", "manifest file name")
	flagArch := flag.String("arch", "", "target architecture")
	flagSysoFile := flag.String("o", "resource.syso", "output file name")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %v [flags]\n\nPossible flags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	version := fileVersion(config.ProgramVersion)
	vi := &goversioninfo.VersionInfo{
		ManifestPath: *flagManifest,
		FixedFileInfo: goversioninfo.FixedFileInfo{
			FileVersion:    version,
			ProductVersion: version,
		},
		StringFileInfo: goversioninfo.StringFileInfo{
			CompanyName:      config.ProgramAuthor,
			FileDescription:  config.ProgramDescription,
			InternalName:     config.ProgramName,
			OriginalFilename: config.ProgramName + ".exe",
			ProductName:      config.ProgramName,
			ProductVersion:   config.ProgramVersion,
			LegalCopyright:   config.CopyrightInfo,
		},
	}

	vi.Build()
	vi.Walk()
	if err := vi.WriteSyso(*flagSysoFile, *flagArch); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
