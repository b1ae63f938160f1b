package treemap

import "fmt"
import "io"
import "strings"

// Fprint render the tree sideways into buffer, right subtree on top,
// one node per line indented by depth. Debugging aid, holds a read
// lock for the full render.
func (t *TreeMap[K, V]) Fprint(buffer io.Writer) {
	t.rw.RLock()
	defer t.rw.RUnlock()

	var print func(nd *node[K, V], depth int)
	print = func(nd *node[K, V], depth int) {
		if nd == nil {
			return
		}
		print(nd.right, depth+1)
		prefix := strings.Repeat("    ", depth)
		fmt.Fprintf(buffer, "%s%s\n", prefix, t.entrystring(nd))
		print(nd.left, depth+1)
	}
	print(t.root, 0)
}

// Dotdump write out the tree in graphviz dot format into buffer, red
// nodes come out red. Render with,
//
//	dot -Tpng out.dot -o out.png
func (t *TreeMap[K, V]) Dotdump(buffer io.Writer) {
	t.rw.RLock()
	defer t.rw.RUnlock()

	lines := []string{
		"digraph treemap {",
		"  node [shape=record];",
		"}",
	}
	buffer.Write([]byte(strings.Join(lines[:len(lines)-1], "\n")))
	buffer.Write([]byte("\n"))
	t.dottree(buffer, t.root, "root")
	buffer.Write([]byte(lines[len(lines)-1]))
	buffer.Write([]byte("\n"))
}

func (t *TreeMap[K, V]) dottree(buffer io.Writer, nd *node[K, V], id string) {
	if nd == nil {
		return
	}
	colour := "black"
	if isred(nd) {
		colour = "red"
	}
	fmsg := "  %s [label=\"{%s}\",color=%s];\n"
	fmt.Fprintf(buffer, fmsg, id, t.entrystring(nd), colour)
	if nd.left != nil {
		leftid := id + "l"
		fmt.Fprintf(buffer, "  %s -> %s;\n", id, leftid)
		t.dottree(buffer, nd.left, leftid)
	}
	if nd.right != nil {
		rightid := id + "r"
		fmt.Fprintf(buffer, "  %s -> %s;\n", id, rightid)
		t.dottree(buffer, nd.right, rightid)
	}
}

func (t *TreeMap[K, V]) entrystring(nd *node[K, V]) string {
	if t.tostring != nil {
		return t.tostring(nd.key, nd.value)
	}
	return fmt.Sprintf("%v:%v", nd.key, nd.value)
}
