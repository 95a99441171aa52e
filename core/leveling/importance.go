package leveling

import (
	"fmt"
	"sort"

	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/model"
)

// Traversal marks for the iterative importance walk. A gray-to-gray edge
// means the successor graph, which is business-logically acyclic, actually
// contains a cycle; the edge is reported and skipped instead of looping.
type mark uint8

const (
	white mark = iota
	gray
	black
)

// computeImportance derives each task's scheduling importance: the maximum
// of its own priority and the importance of all direct successors. The walk
// is an explicit post-order traversal so cycles are detected rather than
// recursed into.
func computeImportance(tasks map[string]*model.Task) (map[string]int, []string) {
	importance := make(map[string]int, len(tasks))
	colors := make(map[string]mark, len(tasks))
	var warnings []string

	type frame struct {
		id   string
		next int
	}

	for _, root := range sortedTaskIDs(tasks) {
		if colors[root] != white {
			continue
		}
		colors[root] = gray
		stack := []frame{{id: root}}
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			t := tasks[f.id]
			if f.next < len(t.SuccessorIDs) {
				sid := t.SuccessorIDs[f.next]
				f.next++
				succ, ok := tasks[sid]
				if !ok {
					warnings = append(warnings,
						fmt.Sprintf("task %s references unknown successor %s; ignored for importance", f.id, sid))
					continue
				}
				switch colors[succ.ID] {
				case white:
					colors[succ.ID] = gray
					stack = append(stack, frame{id: succ.ID})
				case gray:
					warnings = append(warnings,
						fmt.Sprintf("dependency cycle detected on edge %s -> %s; edge ignored for importance", f.id, sid))
				}
				continue
			}
			best := t.Priority
			for _, sid := range t.SuccessorIDs {
				if colors[sid] == black && importance[sid] > best {
					best = importance[sid]
				}
			}
			importance[f.id] = best
			colors[f.id] = black
			stack = stack[:len(stack)-1]
		}
	}
	return importance, warnings
}

// processingOrder produces the task order for assignment using Kahn's
// algorithm keyed on predecessor in-degree. Among ready tasks the highest
// importance wins, ties broken by higher raw priority, then by task ID so
// identical inputs always order identically. Predecessor IDs absent from
// the task set contribute zero in-degree.
func processingOrder(tasks map[string]*model.Task, importance map[string]int) ([]string, []string) {
	indegree := make(map[string]int, len(tasks))
	dependents := make(map[string][]string, len(tasks))
	for id, t := range tasks {
		for _, pid := range t.PredecessorIDs {
			if _, ok := tasks[pid]; ok {
				indegree[id]++
				dependents[pid] = append(dependents[pid], id)
			}
		}
	}

	var ready []string
	for _, id := range sortedTaskIDs(tasks) {
		if indegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	better := func(a, b string) bool {
		if importance[a] != importance[b] {
			return importance[a] > importance[b]
		}
		if tasks[a].Priority != tasks[b].Priority {
			return tasks[a].Priority > tasks[b].Priority
		}
		return a < b
	}

	order := make([]string, 0, len(tasks))
	var warnings []string
	for len(ready) > 0 {
		best := 0
		for i := 1; i < len(ready); i++ {
			if better(ready[i], ready[best]) {
				best = i
			}
		}
		id := ready[best]
		ready = append(ready[:best], ready[best+1:]...)
		order = append(order, id)
		for _, did := range dependents[id] {
			indegree[did]--
			if indegree[did] == 0 {
				ready = append(ready, did)
			}
		}
	}

	if len(order) < len(tasks) {
		var rest []string
		seen := make(map[string]bool, len(order))
		for _, id := range order {
			seen[id] = true
		}
		for _, id := range sortedTaskIDs(tasks) {
			if !seen[id] {
				rest = append(rest, id)
			}
		}
		sort.SliceStable(rest, func(i, j int) bool { return better(rest[i], rest[j]) })
		warnings = append(warnings,
			fmt.Sprintf("dependency cycle prevented ordering %d tasks; appended in importance order", len(rest)))
		order = append(order, rest...)
	}
	return order, warnings
}

func sortedTaskIDs(tasks map[string]*model.Task) []string {
	ids := make([]string, 0, len(tasks))
	for id := range tasks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
