package syntax

// resolveSubroutines validates every subroutine call against the tree's
// group tables. Illegal subroutine numbers/names are rejected here, at
// compile time -- per the error taxonomy, this is the one backreference-
// adjacent failure that does not wait until match time.
func resolveSubroutines(tree *RegexTree) error {
	var walk func(n *RegexNode) error
	walk = func(n *RegexNode) error {
		if n.T == NtSubroutine && !n.Recursive {
			if n.RefName != "" {
				if _, ok := tree.Capnames[n.RefName]; !ok {
					return newError(InvalidPattern, "", -1, "unknown subroutine name %q", n.RefName)
				}
			} else if _, ok := tree.Caps[n.RefNum]; !ok {
				return newError(InvalidPattern, "", -1, "unknown subroutine number %d", n.RefNum)
			}
		}
		for _, c := range n.Children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(tree.Root)
}

// SubroutineTarget resolves a subroutine node to the capturing-group node
// whose child is the sub-AST to re-execute. Used by the executor, not the
// parser; kept here next to resolveSubroutines since both reason about the
// same tables.
func SubroutineTarget(tree *RegexTree, n *RegexNode) *RegexNode {
	if n.Recursive {
		return tree.Caps[0]
	}
	if n.RefName != "" {
		if num, ok := tree.Capnames[n.RefName]; ok {
			return tree.Caps[num]
		}
		return nil
	}
	return tree.Caps[n.RefNum]
}
