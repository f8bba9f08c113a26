package results_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/abevier/failable/results"
)

func ExampleCatch2() {
	r := results.Catch2(func(a, b int) int { return a + b }, 1, 2)
	fmt.Println(r.IsSuccess(), r.Value())

	r = results.Catch2(func(a, b int) int { return a / b }, 1, 0)
	fmt.Println(r.IsFailure(), r.Err())
	// Output:
	// true 3
	// true runtime error: integer divide by zero
}

func ExampleCall1() {
	r := results.Call1(strconv.Atoi, "42")
	if v, _, ok := r.Unwrap(); ok {
		fmt.Println("parsed", v)
	}

	r = results.Call1(strconv.Atoi, "forty-two")
	if _, err, ok := r.Unwrap(); !ok {
		fmt.Println("failed:", errors.Is(err.(error), strconv.ErrSyntax))
	}
	// Output:
	// parsed 42
	// failed: true
}

func ExampleNew() {
	v, err := strconv.Atoi("7")
	fmt.Println(results.New(v, err))
	// Output: success(7)
}
