package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cast"

	"github.com/textsync/go-diff/diffmatchpatch"
)

func ReadFileAsRunes(filename string) []rune {
	byteArray, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	runes := bytes.Runes(byteArray)
	return runes
}

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintf(os.Stderr, "usage: %s oldfile newfile loc [-unified] [-profile]\n", os.Args[0])
		os.Exit(2)
	}

	unified := false
	for _, arg := range os.Args[4:] {
		switch arg {
		case "-unified":
			unified = true
		case "-profile":
			defer profile.Start(profile.ProfilePath(".")).Stop()
		}
	}

	oldFile := ReadFileAsRunes(os.Args[1])
	newFile := ReadFileAsRunes(os.Args[2])
	oldLoc := cast.ToInt(os.Args[3])
	myDiff := diffmatchpatch.New()
	diff := myDiff.DiffMainRunes(oldFile, newFile, false)
	newLoc := myDiff.DiffXRuneIndex(diff, oldLoc)
	fmt.Println(string(oldFile[oldLoc:clamp(oldLoc+10, len(oldFile))]))
	fmt.Println(string(newFile[newLoc:clamp(newLoc+10, len(newFile))]))

	fmt.Println(fmt.Sprintf("loc_change: %d -> %d", oldLoc, newLoc))

	if unified {
		fmt.Print(myDiff.Unified(string(oldFile), string(newFile),
			diffmatchpatch.UnifiedLabels(os.Args[1], os.Args[2])))
	}
}

func clamp(x, limit int) int {
	if x > limit {
		return limit
	}
	return x
}
