// Package main provides the strided array CLI.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/strided/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("strided %s\n", version)
			return
		case "demo":
			if err := demo(); err != nil {
				fmt.Fprintf(os.Stderr, "demo: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("strided - N-dimensional strided arrays for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Walk through views, reshape and duplication")
}

func demo() error {
	a, err := tensor.NewFunc(tensor.Shape{2, 2, 3}, tensor.RowMajor, func(i int) int { return i })
	if err != nil {
		return err
	}
	describe("a", a)

	row, err := a.Slice(tensor.Index(1))
	if err != nil {
		return err
	}
	describe("a[1]", row)

	col, err := a.Slice(tensor.Whole(), tensor.Whole(), tensor.Index(0))
	if err != nil {
		return err
	}
	describe("a[:, :, 0]", col)

	tr, err := a.Transpose()
	if err != nil {
		return err
	}
	describe("a.T", tr)

	flat, err := col.Ravel()
	if err != nil {
		return err
	}
	describe("ravel(a[:, :, 0])", flat)

	dup, err := tr.Duplicate(tensor.RowMajor)
	if err != nil {
		return err
	}
	describe("copy(a.T, C)", dup)

	sum, err := tensor.Sum(a, -1)
	if err != nil {
		return err
	}
	describe("sum(a, -1)", sum)
	return nil
}

func describe(name string, a *tensor.Array[int]) {
	fmt.Printf("%-18s %v strides=%v values=%v\n", name, a, a.Strides(), a.Values())
}
