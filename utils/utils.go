package utils

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"pokedump/types"
)

const INI_FILE = "pokedump.ini"

// Safe_lookup looks up a name table and never comes back empty-handed.
// Expanded ROM hacks invent IDs faster than anyone transcribes them, so a
// miss is reported inline rather than treated as an error.
func Safe_lookup[K comparable](from map[K]string, with K) string {
	out, ok := from[with]
	if !ok {
		out = fmt.Sprintf("Unknown (%v)", with)
	}
	return out
}

// Get_savefile_dir returns the directory to look for save files in:
// --dir argument if present, then the ini file, then the working directory.
func Get_savefile_dir() string {
	// dir from command line
	for i, arg := range os.Args[:len(os.Args)-1] {
		if arg == "--dir" {
			return os.Args[i+1]
		}
	}

	// dir from ini file
	cfg, err := ini.Load(INI_FILE)
	if err == nil {
		// Classic read of values, default section can be represented as empty string
		dir := cfg.Section("").Key("dir").String()
		if dir != "" {
			return dir
		}
	}

	wd, _ := os.Getwd()
	return wd
}

// Get_empty_policy reads the slot-emptiness heuristic from the ini file.
// An unrecognised value falls back to the default rather than aborting -
// the policy only affects which slots get offered to the decoder.
func Get_empty_policy() types.EmptyPolicy {
	cfg, err := ini.Load(INI_FILE)
	if err != nil {
		return types.EMPTY_ALL_ZERO
	}

	policy, err := types.Empty_policy(cfg.Section("").Key("empty_policy").String())
	if err != nil {
		fmt.Println(err)
		return types.EMPTY_ALL_ZERO
	}
	return policy
}
