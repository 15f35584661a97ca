package app

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// FloatArray is a flag.Value that accumulates comma separated floats,
// kept sorted in descending order.
type FloatArray []float64

func (a *FloatArray) Get() interface{} { return []float64(*a) }

func (a *FloatArray) Set(param string) error {
	for _, s := range strings.Split(param, ",") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("could not parse: %s", s)
		}
		*a = append(*a, v)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(*a)))
	return nil
}

func (a *FloatArray) String() string {
	var s []string
	for _, v := range *a {
		s = append(s, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return strings.Join(s, ",")
}
