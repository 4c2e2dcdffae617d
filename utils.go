package fctp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ArrayIntFlags collects repeated occurrences of an integer flag.
type ArrayIntFlags []int

func (a *ArrayIntFlags) String() string {
	parts := make([]string, len(*a))
	for i, v := range *a {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (a *ArrayIntFlags) Set(value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*a = append(*a, v)
	return nil
}

// ArrayStringFlags collects repeated occurrences of a string flag.
type ArrayStringFlags []string

func (a *ArrayStringFlags) String() string {
	return strings.Join(*a, ",")
}

func (a *ArrayStringFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

func GetOpenIndex(i, start int) int {
	return start + i
}

func GetFlowIndex(i, j, m, start int) int {
	return start + i*m + j
}

func PrintFloatMatrix(a [][]float64) string {
	res := ""
	for _, x := range a {
		for _, y := range x {
			res += fmt.Sprintf("%.3f,", y)
		}
		res += fmt.Sprintln("")
	}
	return res
}

func SanitizeJsonArrayLineBreaks(json string) string {
	res := fmt.Sprintf("%s", json)
	var numbers = regexp.MustCompile(`\s*([-]?[0-9]+(\.[0-9]+)?),\s+([-]?[0-9]+(\.[0-9]+)?)(,)?`)
	var brackets = regexp.MustCompile(`\[(([-]?[0-9]+(\.[0-9]+)?,)+[-]?[0-9]+(\.[0-9]+)?)\s+\](,?)(\s+)`)
	for numbers.MatchString(res) {
		res = numbers.ReplaceAllString(res, "$1,$3$5")
	}
	for brackets.MatchString(res) {
		res = brackets.ReplaceAllString(res, "[$1]$5$6")
	}
	return res
}
