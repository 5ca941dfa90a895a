package explain

import (
	"fmt"
	"sort"
)

var topics = map[string]string{
	"classes-needed": `Classes needed is the smallest number of consecutive classes you must attend to reach your target.

Each attended class adds one to both attended and total, so the percentage climbs towards 100% but never past it.
The count is found step by step: attend one more, recompute attended / total * 100, stop once it is at or above the target.
A target of 100% can only be held if no class has been missed yet; otherwise it is reported as unreachable.`,

	"classes-can-miss": `Classes you can miss is the largest number of consecutive classes you can skip and still be at or above your target.

Each missed class adds one to total only, so the percentage falls towards 0%.
The count is found step by step: miss one more, recompute attended / total * 100, stop at the first miss that drops below the target.
If you are already below the target the answer is 0; attend classes first.`,

	"projection": `The projection compares four percentages:

- Current %: attended / total * 100
- Target %: the percentage you want to hold
- N Attend All: (attended + N) / (total + N) * 100, attending every upcoming class
- N Miss All: attended / (total + N) * 100, missing every upcoming class`,
}

func Topics() []string {
	out := make([]string, 0, len(topics))
	for name := range topics {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func Topic(name string) (string, error) {
	text, ok := topics[name]
	if !ok {
		return "", fmt.Errorf("unknown explain topic %q", name)
	}
	return text, nil
}
