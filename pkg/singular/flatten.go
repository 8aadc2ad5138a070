package singular

// rawNode is one structured node lifted out of the model tree before
// admission filtering.
type rawNode struct {
	node map[string]any
}

// childCollectionKeys are the only fields the traversal descends into.
// The API is inconsistent about casing here, both appear in the wild.
var childCollectionKeys = [2]string{"subcompositions", "Subcompositions"}

// flattenNodes walks an arbitrarily nested model value depth-first and
// returns every structured node in document order, parents before their
// children. A map is emitted as a node and then descended into via its
// child collections; a list is not itself emitted, only its elements.
func flattenNodes(v any) []rawNode {
	var out []rawNode
	switch n := v.(type) {
	case map[string]any:
		out = append(out, rawNode{node: n})
		for _, key := range childCollectionKeys {
			children, ok := n[key].([]any)
			if !ok {
				continue
			}
			for _, child := range children {
				out = append(out, flattenNodes(child)...)
			}
		}
	case []any:
		for _, el := range n {
			out = append(out, flattenNodes(el)...)
		}
	}
	return out
}

// admit converts a raw node into an Asset, or returns false when the node
// is not addressable. The model mixes controllable subcompositions with
// structural container nodes; the latter lack an id, name or field model
// and are dropped here.
func (r rawNode) admit() (Asset, bool) {
	id, _ := r.node["id"].(string)
	if id == "" {
		return Asset{}, false
	}
	name, ok := r.node["name"].(string)
	if !ok {
		if r.node["name"] == nil {
			return Asset{}, false
		}
		name = ""
	}
	modelRaw, present := r.node["model"]
	if !present || modelRaw == nil {
		return Asset{}, false
	}

	fields := make(map[string]Field)
	if list, ok := modelRaw.([]any); ok {
		for _, fv := range list {
			fm, ok := fv.(map[string]any)
			if !ok {
				continue
			}
			fid, _ := fm["id"].(string)
			ftype, _ := fm["type"].(string)
			fields[fid] = Field{ID: fid, Type: ftype, Meta: fm}
		}
	}

	return Asset{ID: id, Name: name, Fields: fields}, true
}
