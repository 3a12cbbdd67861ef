// File: example_test.go
// Title: Example Tests for EnumX Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial example implementation

package enumx_test

import (
	"fmt"
	"slices"

	"github.com/spf13/afero"

	mdwenumx "github.com/msto63/extx/utils/enumx"
)

type Permission uint8

const (
	PermNone  Permission = 0
	PermRead  Permission = 1
	PermWrite Permission = 2
	PermAll   Permission = 3
)

func (Permission) EnumDefinition() mdwenumx.Definition[Permission] {
	return mdwenumx.Flags(
		mdwenumx.Member[Permission]{Name: "None", Value: PermNone},
		mdwenumx.Member[Permission]{Name: "Read", Value: PermRead},
		mdwenumx.Member[Permission]{Name: "Write", Value: PermWrite},
		mdwenumx.Member[Permission]{Name: "All", Value: PermAll, Label: "Full Access"},
	)
}

type Level int

const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
)

var _ = mdwenumx.MustRegister(mdwenumx.Values(
	mdwenumx.Member[Level]{Name: "Low", Value: LevelLow},
	mdwenumx.Member[Level]{Name: "Medium", Value: LevelMedium},
	mdwenumx.Member[Level]{Name: "High", Value: LevelHigh, Label: "Critical"},
))

func ExampleToEnum() {
	fmt.Println(mdwenumx.ToEnum[Level]("medium"))
	fmt.Println(mdwenumx.ToEnum[Level]("CRITICAL"))
	fmt.Println(mdwenumx.ToEnum[Level]("unknown"))
	// Output:
	// 1
	// 2
	// 0
}

func ExampleToEnum_flags() {
	fmt.Println(mdwenumx.ToEnum[Permission]("write, read"))
	fmt.Println(mdwenumx.ToEnum[Permission]("Read | Bogus"))
	fmt.Println(mdwenumx.ToEnum[Permission]("   "))
	// Output:
	// 3
	// 1
	// 0
}

func ExampleGetDescription() {
	fmt.Println(mdwenumx.GetDescription(LevelHigh))
	fmt.Println(mdwenumx.GetDescription(PermAll))
	fmt.Println(mdwenumx.GetDescription(PermWrite))
	fmt.Println(mdwenumx.GetDescription(Permission(8)))
	// Output:
	// Critical
	// Full Access
	// Write
	// 8
}

func ExampleEnumDict() {
	dict := mdwenumx.EnumDict[Level]()

	keys := make([]Level, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		fmt.Printf("%d=%s\n", k, dict[k])
	}
	// Output:
	// 0=Low
	// 1=Medium
	// 2=Critical
}

func ExampleLoadCatalog() {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "enums.yaml", []byte(`
enums:
  - name: weekday
    members:
      - {name: Monday, value: 1, label: Mon}
      - {name: Tuesday, value: 2, label: Tue}
`), 0644)

	cat, err := mdwenumx.LoadCatalog(fs, "enums.yaml")
	if err != nil {
		fmt.Println(err)
		return
	}

	weekday, _ := cat.Get("Weekday")
	fmt.Println(weekday.Parse("tuesday"))
	fmt.Println(weekday.Describe(1, " "))
	// Output:
	// 2
	// Mon
}
