package solo_test

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ib-77/pipeflow/pkg/pipe"
	"github.com/ib-77/pipeflow/pkg/pipe/solo"
)

func ExamplePipe() {
	double := pipe.Lift(func(n int) int { return n * 2 })

	empty, _ := solo.Pipe(5)
	doubled, _ := solo.Pipe(5, double)

	fmt.Println(empty, doubled)
	// Output: 5 10
}

func ExamplePipe3() {
	numToString := pipe.Lift(strconv.Itoa)
	stringToArray := pipe.Lift(func(s string) []string { return strings.Split(s, "") })
	arrayToLength := pipe.Lift(func(a []string) int { return len(a) })

	n, err := solo.Pipe3(123, numToString, stringToArray, arrayToLength)
	fmt.Println(n, err)
	// Output: 3 <nil>
}

func ExampleFlow3() {
	double := pipe.Lift(func(n int) int { return n * 2 })
	addOne := pipe.Lift(func(n int) int { return n + 1 })

	format := solo.Flow3(double, addOne, pipe.Lift(strconv.Itoa))

	s, _ := format(5)
	fmt.Printf("%q\n", s)
	// Output: "11"
}
