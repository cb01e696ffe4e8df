package fmmseg

import (
	"strconv"
	"strings"
)

// ConfigID is one of the 16 ABI-stable conversion configuration ids from
// spec.md §6.
type ConfigID int

const (
	ConfigS2T   ConfigID = 1
	ConfigS2TW  ConfigID = 2
	ConfigS2TWP ConfigID = 3
	ConfigS2HK  ConfigID = 4
	ConfigT2S   ConfigID = 5
	ConfigT2TW  ConfigID = 6
	ConfigT2TWP ConfigID = 7
	ConfigT2HK  ConfigID = 8
	ConfigTW2S  ConfigID = 9
	ConfigTW2SP ConfigID = 10
	ConfigTW2T  ConfigID = 11
	ConfigTW2TP ConfigID = 12
	ConfigHK2S  ConfigID = 13
	ConfigHK2T  ConfigID = 14
	ConfigJP2T  ConfigID = 15
	ConfigT2JP  ConfigID = 16
)

var configNames = map[ConfigID]string{
	ConfigS2T:   "s2t",
	ConfigS2TW:  "s2tw",
	ConfigS2TWP: "s2twp",
	ConfigS2HK:  "s2hk",
	ConfigT2S:   "t2s",
	ConfigT2TW:  "t2tw",
	ConfigT2TWP: "t2twp",
	ConfigT2HK:  "t2hk",
	ConfigTW2S:  "tw2s",
	ConfigTW2SP: "tw2sp",
	ConfigTW2T:  "tw2t",
	ConfigTW2TP: "tw2tp",
	ConfigHK2S:  "hk2s",
	ConfigHK2T:  "hk2t",
	ConfigJP2T:  "jp2t",
	ConfigT2JP:  "t2jp",
}

var configIDsByName = func() map[string]ConfigID {
	m := make(map[string]ConfigID, len(configNames))
	for id, name := range configNames {
		m[name] = id
	}
	return m
}()

// String returns the config's canonical lowercase name, or its numeric
// value (as a decimal string prefixed by "?") if it isn't one of the 16
// ids — used verbatim in InvalidConfigError's message.
func (id ConfigID) String() string {
	if name, ok := configNames[id]; ok {
		return name
	}
	return "?" + strconv.Itoa(int(id))
}

// Valid reports whether id is one of the 16 defined configuration ids.
func (id ConfigID) Valid() bool {
	_, ok := configNames[id]
	return ok
}

// ConfigIDToName maps a numeric config id to its canonical string alias.
func ConfigIDToName(id ConfigID) (string, bool) {
	name, ok := configNames[id]
	return name, ok
}

// ConfigNameToID maps a case-insensitive string alias to its numeric id
// (spec.md §6: "string aliases are case-insensitive and map 1:1").
func ConfigNameToID(name string) (ConfigID, bool) {
	id, ok := configIDsByName[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}
