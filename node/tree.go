package node

import (
	"errors"
)

// treeNode is the part of a Node that handles the tree structure.
type treeNode struct {
	name       string
	firstChild Node
	lastChild  Node
	parent     Node
	next       Node
	prev       Node
	doc        *Document
}

func (n *treeNode) getTreeNode() *treeNode {
	return n
}

func (n *treeNode) OwnerDocument() *Document {
	return n.doc
}

func (n *treeNode) FirstChild() Node {
	return n.firstChild
}

func (n *treeNode) LastChild() Node {
	return n.lastChild
}

func (n *treeNode) Parent() Node {
	return n.parent
}

func (n *treeNode) NextSibling() Node {
	return n.next
}

func (n *treeNode) PrevSibling() Node {
	return n.prev
}

func (n *treeNode) Content(dst []byte) ([]byte, error) {
	result := dst
	for e := n.firstChild; e != nil; e = e.NextSibling() {
		if e.Type() == CommentNodeType {
			continue
		}
		var err error
		result, err = e.Content(result)
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

func (n *treeNode) SetOwnerDocument(doc *Document) error {
	if n == nil {
		return errors.New("cannot set owner document to nil node")
	}
	if doc == nil {
		return errors.New("cannot set nil document")
	}

	n.doc = doc
	return nil
}

func (n *treeNode) SetParent(p Node) error {
	if n == nil {
		return errors.New("cannot set parent to nil node")
	}
	if p == nil {
		return errors.New("cannot set nil parent")
	}

	n.parent = p
	return nil
}

func addSibling(n, sibling Node) error {
	if n == nil {
		return errors.New("cannot add sibling to nil node")
	}
	if sibling == nil {
		return errors.New("cannot add nil sibling")
	}
	if err := checkInsertable(n.Parent(), sibling); err != nil {
		return err
	}
	unlink(sibling)

	l := n
	lt := n.getTreeNode()
	st := sibling.getTreeNode()

	for lt.next != nil {
		l = lt.next
		lt = l.getTreeNode()
	}

	lt.next = sibling
	st.prev = l
	if lt.parent != nil {
		st.parent = lt.parent
		lt.parent.getTreeNode().lastChild = sibling
	}
	if st.doc == nil && lt.doc != nil {
		st.doc = lt.doc
	}
	return nil
}

// checkInsertable reports whether child may be placed under parent.
// Documents never become children, and a node cannot be moved into
// its own subtree.
func checkInsertable(parent, child Node) error {
	if child.Type() == DocumentNodeType {
		return ErrInvalidOperation
	}
	for p := parent; p != nil; p = p.Parent() {
		if p == child {
			return ErrInvalidOperation
		}
	}
	return nil
}

// unlink detaches n from its parent and siblings
func unlink(n Node) {
	nt := n.getTreeNode()
	if nt.prev != nil {
		nt.prev.getTreeNode().next = nt.next
	}
	if nt.next != nil {
		nt.next.getTreeNode().prev = nt.prev
	}
	if p := nt.parent; p != nil {
		pt := p.getTreeNode()
		if pt.firstChild == n {
			pt.firstChild = nt.next
		}
		if pt.lastChild == n {
			pt.lastChild = nt.prev
		}
	}
	nt.parent = nil
	nt.next = nil
	nt.prev = nil
}

func addChild(parent, child Node) error {
	if child == nil {
		return errors.New("cannot add nil child")
	}
	if err := checkInsertable(parent, child); err != nil {
		return err
	}
	unlink(child)

	pt := parent.getTreeNode()
	ct := child.getTreeNode()
	if pt.doc != nil {
		ct.doc = pt.doc
	}

	l := pt.lastChild
	if l == nil { // No children, set firstChild to cur, and bail out
		pt.firstChild = child
		pt.lastChild = child
		ct.parent = parent
		return nil
	}

	// Adjacent text nodes are coalesced into the existing one
	if child.Type() == TextNodeType && l.Type() == TextNodeType {
		content, err := child.Content(nil)
		if err != nil {
			return err
		}
		return l.AddContent(content)
	}

	// AddSibling handles setting the parent, and the
	// lastChild pointer
	return addSibling(l, child)
}

func addContent(n Node, content []byte) error {
	t := NewText(content)
	if doc := n.OwnerDocument(); doc != nil {
		if err := t.SetOwnerDocument(doc); err != nil {
			return err
		}
	}
	return n.AddChild(t)
}

func replaceNode(n Node, cur Node) error {
	if cur == nil {
		return errors.New("cannot replace with nil node")
	}
	if n == cur {
		return nil
	}
	if err := checkInsertable(n.Parent(), cur); err != nil {
		return err
	}
	unlink(cur)

	if next := n.NextSibling(); next != nil {
		cur.getTreeNode().next = next // cur.next = n.next
		next.getTreeNode().prev = cur // n.next.prev = cur
	}

	if prev := n.PrevSibling(); prev != nil {
		cur.getTreeNode().prev = prev // cur.prev = n.prev
		prev.getTreeNode().next = cur // n.prev.next = cur
	}

	if parent := n.Parent(); parent != nil {
		if parent.FirstChild() == n {
			parent.getTreeNode().firstChild = cur // parent.firstChild = cur
		}
		if parent.LastChild() == n {
			parent.getTreeNode().lastChild = cur // parent.lastChild = cur
		}
		cur.getTreeNode().parent = parent
	}

	nt := n.getTreeNode()
	if nt.doc != nil {
		cur.getTreeNode().doc = nt.doc
	}
	nt.parent = nil
	nt.next = nil
	nt.prev = nil
	return nil
}
