package cst

// RootHandle refers to a Root node.
type RootHandle struct{ id NodeID }

// NewRootHandle returns a handle for id after checking that it is a Root node.
func NewRootHandle(t *Tree, id NodeID) (RootHandle, error) {
	if err := checkNonTerminal(t, id, NodeRoot); err != nil {
		return RootHandle{}, err
	}
	return RootHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h RootHandle) NodeID() NodeID { return h.id }

// Kind returns NodeRoot.
func (h RootHandle) Kind() NonTerminalKind { return NodeRoot }

// View decomposes the node's children, skipping trivia.
func (h RootHandle) View(t *Tree) (RootView, error) {
	return h.ViewWithTrivia(t, nil)
}

// RootView holds the children of a Root node.
type RootView struct {
	Swon SwonHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h RootHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (RootView, error) {
	c := openChildren(t, h.id, NodeRoot, trivia)
	view := RootView{
		Swon: SwonHandle{id: c.nonTerminal(NodeSwon)},
	}
	if err := c.finish(); err != nil {
		return RootView{}, err
	}
	return view, nil
}

// SwonHandle refers to a Swon node.
type SwonHandle struct{ id NodeID }

// NewSwonHandle returns a handle for id after checking that it is a Swon node.
func NewSwonHandle(t *Tree, id NodeID) (SwonHandle, error) {
	if err := checkNonTerminal(t, id, NodeSwon); err != nil {
		return SwonHandle{}, err
	}
	return SwonHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h SwonHandle) NodeID() NodeID { return h.id }

// Kind returns NodeSwon.
func (h SwonHandle) Kind() NonTerminalKind { return NodeSwon }

// View decomposes the node's children, skipping trivia.
func (h SwonHandle) View(t *Tree) (SwonView, error) {
	return h.ViewWithTrivia(t, nil)
}

// SwonView holds the children of a Swon node.
type SwonView struct {
	SwonList  SwonListHandle
	SwonList0 SwonList0Handle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h SwonHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (SwonView, error) {
	c := openChildren(t, h.id, NodeSwon, trivia)
	view := SwonView{
		SwonList:  SwonListHandle{id: c.nonTerminal(NodeSwonList)},
		SwonList0: SwonList0Handle{id: c.nonTerminal(NodeSwonList0)},
	}
	if err := c.finish(); err != nil {
		return SwonView{}, err
	}
	return view, nil
}

// SwonListHandle refers to a SwonList node.
type SwonListHandle struct{ id NodeID }

// NewSwonListHandle returns a handle for id after checking that it is a SwonList node.
func NewSwonListHandle(t *Tree, id NodeID) (SwonListHandle, error) {
	if err := checkNonTerminal(t, id, NodeSwonList); err != nil {
		return SwonListHandle{}, err
	}
	return SwonListHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h SwonListHandle) NodeID() NodeID { return h.id }

// Kind returns NodeSwonList.
func (h SwonListHandle) Kind() NonTerminalKind { return NodeSwonList }

// View decomposes the node's children, skipping trivia.
func (h SwonListHandle) View(t *Tree) (*SwonListView, error) {
	return h.ViewWithTrivia(t, nil)
}

// SwonListView holds one element of a SwonList list and the rest of the list.
type SwonListView struct {
	Binding  BindingHandle
	SwonList SwonListHandle
}

// SwonListItem is one element of a SwonList list.
type SwonListItem struct {
	Binding BindingHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
// The result is nil at the end of the list.
func (h SwonListHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (*SwonListView, error) {
	c := openChildren(t, h.id, NodeSwonList, trivia)
	if c.empty() {
		return nil, c.finish()
	}
	view := SwonListView{
		Binding:  BindingHandle{id: c.nonTerminal(NodeBinding)},
		SwonList: SwonListHandle{id: c.nonTerminal(NodeSwonList)},
	}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return &view, nil
}

// Items flattens the list starting at h.
func (h SwonListHandle) Items(t *Tree) ([]SwonListItem, error) {
	var items []SwonListItem
	for cur := h; ; {
		view, err := cur.View(t)
		if err != nil {
			return nil, err
		}
		if view == nil {
			return items, nil
		}
		items = append(items, SwonListItem{Binding: view.Binding})
		cur = view.SwonList
	}
}

// Items returns the element held by v followed by the rest of the list.
func (v SwonListView) Items(t *Tree) ([]SwonListItem, error) {
	rest, err := v.SwonList.Items(t)
	if err != nil {
		return nil, err
	}
	return append([]SwonListItem{{Binding: v.Binding}}, rest...), nil
}

// SwonList0Handle refers to a SwonList0 node.
type SwonList0Handle struct{ id NodeID }

// NewSwonList0Handle returns a handle for id after checking that it is a SwonList0 node.
func NewSwonList0Handle(t *Tree, id NodeID) (SwonList0Handle, error) {
	if err := checkNonTerminal(t, id, NodeSwonList0); err != nil {
		return SwonList0Handle{}, err
	}
	return SwonList0Handle{id: id}, nil
}

// NodeID returns the id of the node.
func (h SwonList0Handle) NodeID() NodeID { return h.id }

// Kind returns NodeSwonList0.
func (h SwonList0Handle) Kind() NonTerminalKind { return NodeSwonList0 }

// View decomposes the node's children, skipping trivia.
func (h SwonList0Handle) View(t *Tree) (*SwonList0View, error) {
	return h.ViewWithTrivia(t, nil)
}

// SwonList0View holds one element of a SwonList0 list and the rest of the list.
type SwonList0View struct {
	Section   SectionHandle
	SwonList0 SwonList0Handle
}

// SwonList0Item is one element of a SwonList0 list.
type SwonList0Item struct {
	Section SectionHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
// The result is nil at the end of the list.
func (h SwonList0Handle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (*SwonList0View, error) {
	c := openChildren(t, h.id, NodeSwonList0, trivia)
	if c.empty() {
		return nil, c.finish()
	}
	view := SwonList0View{
		Section:   SectionHandle{id: c.nonTerminal(NodeSection)},
		SwonList0: SwonList0Handle{id: c.nonTerminal(NodeSwonList0)},
	}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return &view, nil
}

// Items flattens the list starting at h.
func (h SwonList0Handle) Items(t *Tree) ([]SwonList0Item, error) {
	var items []SwonList0Item
	for cur := h; ; {
		view, err := cur.View(t)
		if err != nil {
			return nil, err
		}
		if view == nil {
			return items, nil
		}
		items = append(items, SwonList0Item{Section: view.Section})
		cur = view.SwonList0
	}
}

// Items returns the element held by v followed by the rest of the list.
func (v SwonList0View) Items(t *Tree) ([]SwonList0Item, error) {
	rest, err := v.SwonList0.Items(t)
	if err != nil {
		return nil, err
	}
	return append([]SwonList0Item{{Section: v.Section}}, rest...), nil
}

// BindingHandle refers to a Binding node.
type BindingHandle struct{ id NodeID }

// NewBindingHandle returns a handle for id after checking that it is a Binding node.
func NewBindingHandle(t *Tree, id NodeID) (BindingHandle, error) {
	if err := checkNonTerminal(t, id, NodeBinding); err != nil {
		return BindingHandle{}, err
	}
	return BindingHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h BindingHandle) NodeID() NodeID { return h.id }

// Kind returns NodeBinding.
func (h BindingHandle) Kind() NonTerminalKind { return NodeBinding }

// View decomposes the node's children, skipping trivia.
func (h BindingHandle) View(t *Tree) (BindingView, error) {
	return h.ViewWithTrivia(t, nil)
}

// BindingView holds the children of a Binding node.
type BindingView struct {
	Keys       KeysHandle
	BindingRhs BindingRhsHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h BindingHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (BindingView, error) {
	c := openChildren(t, h.id, NodeBinding, trivia)
	view := BindingView{
		Keys:       KeysHandle{id: c.nonTerminal(NodeKeys)},
		BindingRhs: BindingRhsHandle{id: c.nonTerminal(NodeBindingRhs)},
	}
	if err := c.finish(); err != nil {
		return BindingView{}, err
	}
	return view, nil
}

// BindingRhsHandle refers to a BindingRhs node.
type BindingRhsHandle struct{ id NodeID }

// NewBindingRhsHandle returns a handle for id after checking that it is a BindingRhs node.
func NewBindingRhsHandle(t *Tree, id NodeID) (BindingRhsHandle, error) {
	if err := checkNonTerminal(t, id, NodeBindingRhs); err != nil {
		return BindingRhsHandle{}, err
	}
	return BindingRhsHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h BindingRhsHandle) NodeID() NodeID { return h.id }

// Kind returns NodeBindingRhs.
func (h BindingRhsHandle) Kind() NonTerminalKind { return NodeBindingRhs }

// View decomposes the node's children, skipping trivia.
func (h BindingRhsHandle) View(t *Tree) (BindingRhsView, error) {
	return h.ViewWithTrivia(t, nil)
}

// BindingRhsView is one of ValueBindingHandle, SectionBindingHandle, TextBindingHandle.
type BindingRhsView interface {
	Handle
	isBindingRhsView()
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h BindingRhsHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (BindingRhsView, error) {
	c := openChildren(t, h.id, NodeBindingRhs, trivia)
	id, data := c.next()
	var view BindingRhsView
	if c.err == nil {
		switch {
		case data.isNonTerminal(NodeValueBinding):
			view = ValueBindingHandle{id: id}
		case data.isNonTerminal(NodeSectionBinding):
			view = SectionBindingHandle{id: id}
		case data.isNonTerminal(NodeTextBinding):
			view = TextBindingHandle{id: id}
		default:
			c.unexpected(id, data)
		}
	}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return view, nil
}

// ValueBindingHandle refers to a ValueBinding node.
type ValueBindingHandle struct{ id NodeID }

// NewValueBindingHandle returns a handle for id after checking that it is a ValueBinding node.
func NewValueBindingHandle(t *Tree, id NodeID) (ValueBindingHandle, error) {
	if err := checkNonTerminal(t, id, NodeValueBinding); err != nil {
		return ValueBindingHandle{}, err
	}
	return ValueBindingHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h ValueBindingHandle) NodeID() NodeID { return h.id }

// Kind returns NodeValueBinding.
func (h ValueBindingHandle) Kind() NonTerminalKind { return NodeValueBinding }

// View decomposes the node's children, skipping trivia.
func (h ValueBindingHandle) View(t *Tree) (ValueBindingView, error) {
	return h.ViewWithTrivia(t, nil)
}

// ValueBindingView holds the children of a ValueBinding node.
type ValueBindingView struct {
	Bind  BindHandle
	Value ValueHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h ValueBindingHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (ValueBindingView, error) {
	c := openChildren(t, h.id, NodeValueBinding, trivia)
	view := ValueBindingView{
		Bind:  BindHandle{id: c.nonTerminal(NodeBind)},
		Value: ValueHandle{id: c.nonTerminal(NodeValue)},
	}
	if err := c.finish(); err != nil {
		return ValueBindingView{}, err
	}
	return view, nil
}

func (ValueBindingHandle) isBindingRhsView() {}

// SectionBindingHandle refers to a SectionBinding node.
type SectionBindingHandle struct{ id NodeID }

// NewSectionBindingHandle returns a handle for id after checking that it is a SectionBinding node.
func NewSectionBindingHandle(t *Tree, id NodeID) (SectionBindingHandle, error) {
	if err := checkNonTerminal(t, id, NodeSectionBinding); err != nil {
		return SectionBindingHandle{}, err
	}
	return SectionBindingHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h SectionBindingHandle) NodeID() NodeID { return h.id }

// Kind returns NodeSectionBinding.
func (h SectionBindingHandle) Kind() NonTerminalKind { return NodeSectionBinding }

// View decomposes the node's children, skipping trivia.
func (h SectionBindingHandle) View(t *Tree) (SectionBindingView, error) {
	return h.ViewWithTrivia(t, nil)
}

// SectionBindingView holds the children of a SectionBinding node.
type SectionBindingView struct {
	Begin BeginHandle
	Swon  SwonHandle
	End   EndHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h SectionBindingHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (SectionBindingView, error) {
	c := openChildren(t, h.id, NodeSectionBinding, trivia)
	view := SectionBindingView{
		Begin: BeginHandle{id: c.nonTerminal(NodeBegin)},
		Swon:  SwonHandle{id: c.nonTerminal(NodeSwon)},
		End:   EndHandle{id: c.nonTerminal(NodeEnd)},
	}
	if err := c.finish(); err != nil {
		return SectionBindingView{}, err
	}
	return view, nil
}

func (SectionBindingHandle) isBindingRhsView() {}

func (SectionBindingHandle) isSectionBodyView() {}

// TextBindingHandle refers to a TextBinding node.
type TextBindingHandle struct{ id NodeID }

// NewTextBindingHandle returns a handle for id after checking that it is a TextBinding node.
func NewTextBindingHandle(t *Tree, id NodeID) (TextBindingHandle, error) {
	if err := checkNonTerminal(t, id, NodeTextBinding); err != nil {
		return TextBindingHandle{}, err
	}
	return TextBindingHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h TextBindingHandle) NodeID() NodeID { return h.id }

// Kind returns NodeTextBinding.
func (h TextBindingHandle) Kind() NonTerminalKind { return NodeTextBinding }

// View decomposes the node's children, skipping trivia.
func (h TextBindingHandle) View(t *Tree) (TextBindingView, error) {
	return h.ViewWithTrivia(t, nil)
}

// TextBindingView holds the children of a TextBinding node.
type TextBindingView struct {
	TextStart      TextStartHandle
	TextBindingOpt TextBindingOptHandle
	Text           TextHandle
	Newline        NewlineHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h TextBindingHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (TextBindingView, error) {
	c := openChildren(t, h.id, NodeTextBinding, trivia)
	view := TextBindingView{
		TextStart:      TextStartHandle{id: c.nonTerminal(NodeTextStart)},
		TextBindingOpt: TextBindingOptHandle{id: c.nonTerminal(NodeTextBindingOpt)},
		Text:           TextHandle{id: c.nonTerminal(NodeText)},
		Newline:        NewlineHandle{id: c.nonTerminal(NodeNewline)},
	}
	if err := c.finish(); err != nil {
		return TextBindingView{}, err
	}
	return view, nil
}

func (TextBindingHandle) isBindingRhsView() {}

// TextBindingOptHandle refers to a TextBindingOpt node.
type TextBindingOptHandle struct{ id NodeID }

// NewTextBindingOptHandle returns a handle for id after checking that it is a TextBindingOpt node.
func NewTextBindingOptHandle(t *Tree, id NodeID) (TextBindingOptHandle, error) {
	if err := checkNonTerminal(t, id, NodeTextBindingOpt); err != nil {
		return TextBindingOptHandle{}, err
	}
	return TextBindingOptHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h TextBindingOptHandle) NodeID() NodeID { return h.id }

// Kind returns NodeTextBindingOpt.
func (h TextBindingOptHandle) Kind() NonTerminalKind { return NodeTextBindingOpt }

// View decomposes the node's children, skipping trivia.
func (h TextBindingOptHandle) View(t *Tree) (*WsHandle, error) {
	return h.ViewWithTrivia(t, nil)
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
// The result is nil when the option is empty.
func (h TextBindingOptHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (*WsHandle, error) {
	c := openChildren(t, h.id, NodeTextBindingOpt, trivia)
	if c.empty() {
		return nil, c.finish()
	}
	view := WsHandle{id: c.nonTerminal(NodeWs)}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return &view, nil
}

// SectionHandle refers to a Section node.
type SectionHandle struct{ id NodeID }

// NewSectionHandle returns a handle for id after checking that it is a Section node.
func NewSectionHandle(t *Tree, id NodeID) (SectionHandle, error) {
	if err := checkNonTerminal(t, id, NodeSection); err != nil {
		return SectionHandle{}, err
	}
	return SectionHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h SectionHandle) NodeID() NodeID { return h.id }

// Kind returns NodeSection.
func (h SectionHandle) Kind() NonTerminalKind { return NodeSection }

// View decomposes the node's children, skipping trivia.
func (h SectionHandle) View(t *Tree) (SectionView, error) {
	return h.ViewWithTrivia(t, nil)
}

// SectionView holds the children of a Section node.
type SectionView struct {
	At          AtHandle
	Keys        KeysHandle
	SectionBody SectionBodyHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h SectionHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (SectionView, error) {
	c := openChildren(t, h.id, NodeSection, trivia)
	view := SectionView{
		At:          AtHandle{id: c.nonTerminal(NodeAt)},
		Keys:        KeysHandle{id: c.nonTerminal(NodeKeys)},
		SectionBody: SectionBodyHandle{id: c.nonTerminal(NodeSectionBody)},
	}
	if err := c.finish(); err != nil {
		return SectionView{}, err
	}
	return view, nil
}

// SectionBodyHandle refers to a SectionBody node.
type SectionBodyHandle struct{ id NodeID }

// NewSectionBodyHandle returns a handle for id after checking that it is a SectionBody node.
func NewSectionBodyHandle(t *Tree, id NodeID) (SectionBodyHandle, error) {
	if err := checkNonTerminal(t, id, NodeSectionBody); err != nil {
		return SectionBodyHandle{}, err
	}
	return SectionBodyHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h SectionBodyHandle) NodeID() NodeID { return h.id }

// Kind returns NodeSectionBody.
func (h SectionBodyHandle) Kind() NonTerminalKind { return NodeSectionBody }

// View decomposes the node's children, skipping trivia.
func (h SectionBodyHandle) View(t *Tree) (SectionBodyView, error) {
	return h.ViewWithTrivia(t, nil)
}

// SectionBodyView is one of SectionBodyListHandle, SectionBindingHandle.
type SectionBodyView interface {
	Handle
	isSectionBodyView()
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h SectionBodyHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (SectionBodyView, error) {
	c := openChildren(t, h.id, NodeSectionBody, trivia)
	id, data := c.next()
	var view SectionBodyView
	if c.err == nil {
		switch {
		case data.isNonTerminal(NodeSectionBodyList):
			view = SectionBodyListHandle{id: id}
		case data.isNonTerminal(NodeSectionBinding):
			view = SectionBindingHandle{id: id}
		default:
			c.unexpected(id, data)
		}
	}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return view, nil
}

// SectionBodyListHandle refers to a SectionBodyList node.
type SectionBodyListHandle struct{ id NodeID }

// NewSectionBodyListHandle returns a handle for id after checking that it is a SectionBodyList node.
func NewSectionBodyListHandle(t *Tree, id NodeID) (SectionBodyListHandle, error) {
	if err := checkNonTerminal(t, id, NodeSectionBodyList); err != nil {
		return SectionBodyListHandle{}, err
	}
	return SectionBodyListHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h SectionBodyListHandle) NodeID() NodeID { return h.id }

// Kind returns NodeSectionBodyList.
func (h SectionBodyListHandle) Kind() NonTerminalKind { return NodeSectionBodyList }

// View decomposes the node's children, skipping trivia.
func (h SectionBodyListHandle) View(t *Tree) (*SectionBodyListView, error) {
	return h.ViewWithTrivia(t, nil)
}

// SectionBodyListView holds one element of a SectionBodyList list and the rest of the list.
type SectionBodyListView struct {
	Binding         BindingHandle
	SectionBodyList SectionBodyListHandle
}

// SectionBodyListItem is one element of a SectionBodyList list.
type SectionBodyListItem struct {
	Binding BindingHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
// The result is nil at the end of the list.
func (h SectionBodyListHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (*SectionBodyListView, error) {
	c := openChildren(t, h.id, NodeSectionBodyList, trivia)
	if c.empty() {
		return nil, c.finish()
	}
	view := SectionBodyListView{
		Binding:         BindingHandle{id: c.nonTerminal(NodeBinding)},
		SectionBodyList: SectionBodyListHandle{id: c.nonTerminal(NodeSectionBodyList)},
	}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return &view, nil
}

// Items flattens the list starting at h.
func (h SectionBodyListHandle) Items(t *Tree) ([]SectionBodyListItem, error) {
	var items []SectionBodyListItem
	for cur := h; ; {
		view, err := cur.View(t)
		if err != nil {
			return nil, err
		}
		if view == nil {
			return items, nil
		}
		items = append(items, SectionBodyListItem{Binding: view.Binding})
		cur = view.SectionBodyList
	}
}

// Items returns the element held by v followed by the rest of the list.
func (v SectionBodyListView) Items(t *Tree) ([]SectionBodyListItem, error) {
	rest, err := v.SectionBodyList.Items(t)
	if err != nil {
		return nil, err
	}
	return append([]SectionBodyListItem{{Binding: v.Binding}}, rest...), nil
}

func (SectionBodyListHandle) isSectionBodyView() {}

// KeysHandle refers to a Keys node.
type KeysHandle struct{ id NodeID }

// NewKeysHandle returns a handle for id after checking that it is a Keys node.
func NewKeysHandle(t *Tree, id NodeID) (KeysHandle, error) {
	if err := checkNonTerminal(t, id, NodeKeys); err != nil {
		return KeysHandle{}, err
	}
	return KeysHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h KeysHandle) NodeID() NodeID { return h.id }

// Kind returns NodeKeys.
func (h KeysHandle) Kind() NonTerminalKind { return NodeKeys }

// View decomposes the node's children, skipping trivia.
func (h KeysHandle) View(t *Tree) (KeysView, error) {
	return h.ViewWithTrivia(t, nil)
}

// KeysView holds the children of a Keys node.
type KeysView struct {
	Key      KeyHandle
	KeysList KeysListHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h KeysHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (KeysView, error) {
	c := openChildren(t, h.id, NodeKeys, trivia)
	view := KeysView{
		Key:      KeyHandle{id: c.nonTerminal(NodeKey)},
		KeysList: KeysListHandle{id: c.nonTerminal(NodeKeysList)},
	}
	if err := c.finish(); err != nil {
		return KeysView{}, err
	}
	return view, nil
}

// KeysListHandle refers to a KeysList node.
type KeysListHandle struct{ id NodeID }

// NewKeysListHandle returns a handle for id after checking that it is a KeysList node.
func NewKeysListHandle(t *Tree, id NodeID) (KeysListHandle, error) {
	if err := checkNonTerminal(t, id, NodeKeysList); err != nil {
		return KeysListHandle{}, err
	}
	return KeysListHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h KeysListHandle) NodeID() NodeID { return h.id }

// Kind returns NodeKeysList.
func (h KeysListHandle) Kind() NonTerminalKind { return NodeKeysList }

// View decomposes the node's children, skipping trivia.
func (h KeysListHandle) View(t *Tree) (*KeysListView, error) {
	return h.ViewWithTrivia(t, nil)
}

// KeysListView holds one element of a KeysList list and the rest of the list.
type KeysListView struct {
	Dot      DotHandle
	Key      KeyHandle
	KeysList KeysListHandle
}

// KeysListItem is one element of a KeysList list.
type KeysListItem struct {
	Dot DotHandle
	Key KeyHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
// The result is nil at the end of the list.
func (h KeysListHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (*KeysListView, error) {
	c := openChildren(t, h.id, NodeKeysList, trivia)
	if c.empty() {
		return nil, c.finish()
	}
	view := KeysListView{
		Dot:      DotHandle{id: c.nonTerminal(NodeDot)},
		Key:      KeyHandle{id: c.nonTerminal(NodeKey)},
		KeysList: KeysListHandle{id: c.nonTerminal(NodeKeysList)},
	}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return &view, nil
}

// Items flattens the list starting at h.
func (h KeysListHandle) Items(t *Tree) ([]KeysListItem, error) {
	var items []KeysListItem
	for cur := h; ; {
		view, err := cur.View(t)
		if err != nil {
			return nil, err
		}
		if view == nil {
			return items, nil
		}
		items = append(items, KeysListItem{Dot: view.Dot, Key: view.Key})
		cur = view.KeysList
	}
}

// Items returns the element held by v followed by the rest of the list.
func (v KeysListView) Items(t *Tree) ([]KeysListItem, error) {
	rest, err := v.KeysList.Items(t)
	if err != nil {
		return nil, err
	}
	return append([]KeysListItem{{Dot: v.Dot, Key: v.Key}}, rest...), nil
}

// KeyHandle refers to a Key node.
type KeyHandle struct{ id NodeID }

// NewKeyHandle returns a handle for id after checking that it is a Key node.
func NewKeyHandle(t *Tree, id NodeID) (KeyHandle, error) {
	if err := checkNonTerminal(t, id, NodeKey); err != nil {
		return KeyHandle{}, err
	}
	return KeyHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h KeyHandle) NodeID() NodeID { return h.id }

// Kind returns NodeKey.
func (h KeyHandle) Kind() NonTerminalKind { return NodeKey }

// View decomposes the node's children, skipping trivia.
func (h KeyHandle) View(t *Tree) (KeyView, error) {
	return h.ViewWithTrivia(t, nil)
}

// KeyView holds the children of a Key node.
type KeyView struct {
	KeyBase KeyBaseHandle
	KeyOpt  KeyOptHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h KeyHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (KeyView, error) {
	c := openChildren(t, h.id, NodeKey, trivia)
	view := KeyView{
		KeyBase: KeyBaseHandle{id: c.nonTerminal(NodeKeyBase)},
		KeyOpt:  KeyOptHandle{id: c.nonTerminal(NodeKeyOpt)},
	}
	if err := c.finish(); err != nil {
		return KeyView{}, err
	}
	return view, nil
}

// KeyBaseHandle refers to a KeyBase node.
type KeyBaseHandle struct{ id NodeID }

// NewKeyBaseHandle returns a handle for id after checking that it is a KeyBase node.
func NewKeyBaseHandle(t *Tree, id NodeID) (KeyBaseHandle, error) {
	if err := checkNonTerminal(t, id, NodeKeyBase); err != nil {
		return KeyBaseHandle{}, err
	}
	return KeyBaseHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h KeyBaseHandle) NodeID() NodeID { return h.id }

// Kind returns NodeKeyBase.
func (h KeyBaseHandle) Kind() NonTerminalKind { return NodeKeyBase }

// View decomposes the node's children, skipping trivia.
func (h KeyBaseHandle) View(t *Tree) (KeyBaseView, error) {
	return h.ViewWithTrivia(t, nil)
}

// KeyBaseView is one of IdentTerminal, ExtensionNameSpaceHandle, StrHandle, IntegerHandle.
type KeyBaseView interface {
	Handle
	isKeyBaseView()
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h KeyBaseHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (KeyBaseView, error) {
	c := openChildren(t, h.id, NodeKeyBase, trivia)
	id, data := c.next()
	var view KeyBaseView
	if c.err == nil {
		switch {
		case data.isTerminal(TokIdent):
			view = IdentTerminal{id: id}
		case data.isNonTerminal(NodeExtensionNameSpace):
			view = ExtensionNameSpaceHandle{id: id}
		case data.isNonTerminal(NodeStr):
			view = StrHandle{id: id}
		case data.isNonTerminal(NodeInteger):
			view = IntegerHandle{id: id}
		default:
			c.unexpected(id, data)
		}
	}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return view, nil
}

// KeyOptHandle refers to a KeyOpt node.
type KeyOptHandle struct{ id NodeID }

// NewKeyOptHandle returns a handle for id after checking that it is a KeyOpt node.
func NewKeyOptHandle(t *Tree, id NodeID) (KeyOptHandle, error) {
	if err := checkNonTerminal(t, id, NodeKeyOpt); err != nil {
		return KeyOptHandle{}, err
	}
	return KeyOptHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h KeyOptHandle) NodeID() NodeID { return h.id }

// Kind returns NodeKeyOpt.
func (h KeyOptHandle) Kind() NonTerminalKind { return NodeKeyOpt }

// View decomposes the node's children, skipping trivia.
func (h KeyOptHandle) View(t *Tree) (*ArrayMarkerHandle, error) {
	return h.ViewWithTrivia(t, nil)
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
// The result is nil when the option is empty.
func (h KeyOptHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (*ArrayMarkerHandle, error) {
	c := openChildren(t, h.id, NodeKeyOpt, trivia)
	if c.empty() {
		return nil, c.finish()
	}
	view := ArrayMarkerHandle{id: c.nonTerminal(NodeArrayMarker)}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return &view, nil
}

// ExtensionNameSpaceHandle refers to an ExtensionNameSpace node.
type ExtensionNameSpaceHandle struct{ id NodeID }

// NewExtensionNameSpaceHandle returns a handle for id after checking that it is an ExtensionNameSpace node.
func NewExtensionNameSpaceHandle(t *Tree, id NodeID) (ExtensionNameSpaceHandle, error) {
	if err := checkNonTerminal(t, id, NodeExtensionNameSpace); err != nil {
		return ExtensionNameSpaceHandle{}, err
	}
	return ExtensionNameSpaceHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h ExtensionNameSpaceHandle) NodeID() NodeID { return h.id }

// Kind returns NodeExtensionNameSpace.
func (h ExtensionNameSpaceHandle) Kind() NonTerminalKind { return NodeExtensionNameSpace }

// View decomposes the node's children, skipping trivia.
func (h ExtensionNameSpaceHandle) View(t *Tree) (ExtensionNameSpaceView, error) {
	return h.ViewWithTrivia(t, nil)
}

// ExtensionNameSpaceView holds the children of an ExtensionNameSpace node.
type ExtensionNameSpaceView struct {
	Ext   ExtHandle
	Ident IdentTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h ExtensionNameSpaceHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (ExtensionNameSpaceView, error) {
	c := openChildren(t, h.id, NodeExtensionNameSpace, trivia)
	view := ExtensionNameSpaceView{
		Ext:   ExtHandle{id: c.nonTerminal(NodeExt)},
		Ident: IdentTerminal{id: c.terminal(TokIdent)},
	}
	if err := c.finish(); err != nil {
		return ExtensionNameSpaceView{}, err
	}
	return view, nil
}

func (ExtensionNameSpaceHandle) isKeyBaseView() {}

// ExtHandle refers to an Ext node.
type ExtHandle struct{ id NodeID }

// NewExtHandle returns a handle for id after checking that it is an Ext node.
func NewExtHandle(t *Tree, id NodeID) (ExtHandle, error) {
	if err := checkNonTerminal(t, id, NodeExt); err != nil {
		return ExtHandle{}, err
	}
	return ExtHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h ExtHandle) NodeID() NodeID { return h.id }

// Kind returns NodeExt.
func (h ExtHandle) Kind() NonTerminalKind { return NodeExt }

// View decomposes the node's children, skipping trivia.
func (h ExtHandle) View(t *Tree) (ExtView, error) {
	return h.ViewWithTrivia(t, nil)
}

// ExtView holds the children of an Ext node.
type ExtView struct {
	Dollar DollarTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h ExtHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (ExtView, error) {
	c := openChildren(t, h.id, NodeExt, trivia)
	view := ExtView{
		Dollar: DollarTerminal{id: c.terminal(TokDollar)},
	}
	if err := c.finish(); err != nil {
		return ExtView{}, err
	}
	return view, nil
}

// AtHandle refers to an At node.
type AtHandle struct{ id NodeID }

// NewAtHandle returns a handle for id after checking that it is an At node.
func NewAtHandle(t *Tree, id NodeID) (AtHandle, error) {
	if err := checkNonTerminal(t, id, NodeAt); err != nil {
		return AtHandle{}, err
	}
	return AtHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h AtHandle) NodeID() NodeID { return h.id }

// Kind returns NodeAt.
func (h AtHandle) Kind() NonTerminalKind { return NodeAt }

// View decomposes the node's children, skipping trivia.
func (h AtHandle) View(t *Tree) (AtView, error) {
	return h.ViewWithTrivia(t, nil)
}

// AtView holds the children of an At node.
type AtView struct {
	At AtTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h AtHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (AtView, error) {
	c := openChildren(t, h.id, NodeAt, trivia)
	view := AtView{
		At: AtTerminal{id: c.terminal(TokAt)},
	}
	if err := c.finish(); err != nil {
		return AtView{}, err
	}
	return view, nil
}

// DotHandle refers to a Dot node.
type DotHandle struct{ id NodeID }

// NewDotHandle returns a handle for id after checking that it is a Dot node.
func NewDotHandle(t *Tree, id NodeID) (DotHandle, error) {
	if err := checkNonTerminal(t, id, NodeDot); err != nil {
		return DotHandle{}, err
	}
	return DotHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h DotHandle) NodeID() NodeID { return h.id }

// Kind returns NodeDot.
func (h DotHandle) Kind() NonTerminalKind { return NodeDot }

// View decomposes the node's children, skipping trivia.
func (h DotHandle) View(t *Tree) (DotView, error) {
	return h.ViewWithTrivia(t, nil)
}

// DotView holds the children of a Dot node.
type DotView struct {
	Dot DotTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h DotHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (DotView, error) {
	c := openChildren(t, h.id, NodeDot, trivia)
	view := DotView{
		Dot: DotTerminal{id: c.terminal(TokDot)},
	}
	if err := c.finish(); err != nil {
		return DotView{}, err
	}
	return view, nil
}

// ArrayMarkerHandle refers to an ArrayMarker node.
type ArrayMarkerHandle struct{ id NodeID }

// NewArrayMarkerHandle returns a handle for id after checking that it is an ArrayMarker node.
func NewArrayMarkerHandle(t *Tree, id NodeID) (ArrayMarkerHandle, error) {
	if err := checkNonTerminal(t, id, NodeArrayMarker); err != nil {
		return ArrayMarkerHandle{}, err
	}
	return ArrayMarkerHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h ArrayMarkerHandle) NodeID() NodeID { return h.id }

// Kind returns NodeArrayMarker.
func (h ArrayMarkerHandle) Kind() NonTerminalKind { return NodeArrayMarker }

// View decomposes the node's children, skipping trivia.
func (h ArrayMarkerHandle) View(t *Tree) (ArrayMarkerView, error) {
	return h.ViewWithTrivia(t, nil)
}

// ArrayMarkerView holds the children of an ArrayMarker node.
type ArrayMarkerView struct {
	ArrayBegin     ArrayBeginHandle
	ArrayMarkerOpt ArrayMarkerOptHandle
	ArrayEnd       ArrayEndHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h ArrayMarkerHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (ArrayMarkerView, error) {
	c := openChildren(t, h.id, NodeArrayMarker, trivia)
	view := ArrayMarkerView{
		ArrayBegin:     ArrayBeginHandle{id: c.nonTerminal(NodeArrayBegin)},
		ArrayMarkerOpt: ArrayMarkerOptHandle{id: c.nonTerminal(NodeArrayMarkerOpt)},
		ArrayEnd:       ArrayEndHandle{id: c.nonTerminal(NodeArrayEnd)},
	}
	if err := c.finish(); err != nil {
		return ArrayMarkerView{}, err
	}
	return view, nil
}

// ArrayMarkerOptHandle refers to an ArrayMarkerOpt node.
type ArrayMarkerOptHandle struct{ id NodeID }

// NewArrayMarkerOptHandle returns a handle for id after checking that it is an ArrayMarkerOpt node.
func NewArrayMarkerOptHandle(t *Tree, id NodeID) (ArrayMarkerOptHandle, error) {
	if err := checkNonTerminal(t, id, NodeArrayMarkerOpt); err != nil {
		return ArrayMarkerOptHandle{}, err
	}
	return ArrayMarkerOptHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h ArrayMarkerOptHandle) NodeID() NodeID { return h.id }

// Kind returns NodeArrayMarkerOpt.
func (h ArrayMarkerOptHandle) Kind() NonTerminalKind { return NodeArrayMarkerOpt }

// View decomposes the node's children, skipping trivia.
func (h ArrayMarkerOptHandle) View(t *Tree) (*IntegerHandle, error) {
	return h.ViewWithTrivia(t, nil)
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
// The result is nil when the option is empty.
func (h ArrayMarkerOptHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (*IntegerHandle, error) {
	c := openChildren(t, h.id, NodeArrayMarkerOpt, trivia)
	if c.empty() {
		return nil, c.finish()
	}
	view := IntegerHandle{id: c.nonTerminal(NodeInteger)}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return &view, nil
}

// ObjectHandle refers to an Object node.
type ObjectHandle struct{ id NodeID }

// NewObjectHandle returns a handle for id after checking that it is an Object node.
func NewObjectHandle(t *Tree, id NodeID) (ObjectHandle, error) {
	if err := checkNonTerminal(t, id, NodeObject); err != nil {
		return ObjectHandle{}, err
	}
	return ObjectHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h ObjectHandle) NodeID() NodeID { return h.id }

// Kind returns NodeObject.
func (h ObjectHandle) Kind() NonTerminalKind { return NodeObject }

// View decomposes the node's children, skipping trivia.
func (h ObjectHandle) View(t *Tree) (ObjectView, error) {
	return h.ViewWithTrivia(t, nil)
}

// ObjectView holds the children of an Object node.
type ObjectView struct {
	Begin      BeginHandle
	ObjectList ObjectListHandle
	End        EndHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h ObjectHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (ObjectView, error) {
	c := openChildren(t, h.id, NodeObject, trivia)
	view := ObjectView{
		Begin:      BeginHandle{id: c.nonTerminal(NodeBegin)},
		ObjectList: ObjectListHandle{id: c.nonTerminal(NodeObjectList)},
		End:        EndHandle{id: c.nonTerminal(NodeEnd)},
	}
	if err := c.finish(); err != nil {
		return ObjectView{}, err
	}
	return view, nil
}

func (ObjectHandle) isValueView() {}

// ObjectListHandle refers to an ObjectList node.
type ObjectListHandle struct{ id NodeID }

// NewObjectListHandle returns a handle for id after checking that it is an ObjectList node.
func NewObjectListHandle(t *Tree, id NodeID) (ObjectListHandle, error) {
	if err := checkNonTerminal(t, id, NodeObjectList); err != nil {
		return ObjectListHandle{}, err
	}
	return ObjectListHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h ObjectListHandle) NodeID() NodeID { return h.id }

// Kind returns NodeObjectList.
func (h ObjectListHandle) Kind() NonTerminalKind { return NodeObjectList }

// View decomposes the node's children, skipping trivia.
func (h ObjectListHandle) View(t *Tree) (*ObjectListView, error) {
	return h.ViewWithTrivia(t, nil)
}

// ObjectListView holds one element of an ObjectList list and the rest of the list.
type ObjectListView struct {
	Key        KeyHandle
	Bind       BindHandle
	Value      ValueHandle
	ObjectOpt  ObjectOptHandle
	ObjectList ObjectListHandle
}

// ObjectListItem is one element of an ObjectList list.
type ObjectListItem struct {
	Key       KeyHandle
	Bind      BindHandle
	Value     ValueHandle
	ObjectOpt ObjectOptHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
// The result is nil at the end of the list.
func (h ObjectListHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (*ObjectListView, error) {
	c := openChildren(t, h.id, NodeObjectList, trivia)
	if c.empty() {
		return nil, c.finish()
	}
	view := ObjectListView{
		Key:        KeyHandle{id: c.nonTerminal(NodeKey)},
		Bind:       BindHandle{id: c.nonTerminal(NodeBind)},
		Value:      ValueHandle{id: c.nonTerminal(NodeValue)},
		ObjectOpt:  ObjectOptHandle{id: c.nonTerminal(NodeObjectOpt)},
		ObjectList: ObjectListHandle{id: c.nonTerminal(NodeObjectList)},
	}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return &view, nil
}

// Items flattens the list starting at h.
func (h ObjectListHandle) Items(t *Tree) ([]ObjectListItem, error) {
	var items []ObjectListItem
	for cur := h; ; {
		view, err := cur.View(t)
		if err != nil {
			return nil, err
		}
		if view == nil {
			return items, nil
		}
		items = append(items, ObjectListItem{Key: view.Key, Bind: view.Bind, Value: view.Value, ObjectOpt: view.ObjectOpt})
		cur = view.ObjectList
	}
}

// Items returns the element held by v followed by the rest of the list.
func (v ObjectListView) Items(t *Tree) ([]ObjectListItem, error) {
	rest, err := v.ObjectList.Items(t)
	if err != nil {
		return nil, err
	}
	return append([]ObjectListItem{{Key: v.Key, Bind: v.Bind, Value: v.Value, ObjectOpt: v.ObjectOpt}}, rest...), nil
}

// ObjectOptHandle refers to an ObjectOpt node.
type ObjectOptHandle struct{ id NodeID }

// NewObjectOptHandle returns a handle for id after checking that it is an ObjectOpt node.
func NewObjectOptHandle(t *Tree, id NodeID) (ObjectOptHandle, error) {
	if err := checkNonTerminal(t, id, NodeObjectOpt); err != nil {
		return ObjectOptHandle{}, err
	}
	return ObjectOptHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h ObjectOptHandle) NodeID() NodeID { return h.id }

// Kind returns NodeObjectOpt.
func (h ObjectOptHandle) Kind() NonTerminalKind { return NodeObjectOpt }

// View decomposes the node's children, skipping trivia.
func (h ObjectOptHandle) View(t *Tree) (*CommaHandle, error) {
	return h.ViewWithTrivia(t, nil)
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
// The result is nil when the option is empty.
func (h ObjectOptHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (*CommaHandle, error) {
	c := openChildren(t, h.id, NodeObjectOpt, trivia)
	if c.empty() {
		return nil, c.finish()
	}
	view := CommaHandle{id: c.nonTerminal(NodeComma)}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return &view, nil
}

// BeginHandle refers to a Begin node.
type BeginHandle struct{ id NodeID }

// NewBeginHandle returns a handle for id after checking that it is a Begin node.
func NewBeginHandle(t *Tree, id NodeID) (BeginHandle, error) {
	if err := checkNonTerminal(t, id, NodeBegin); err != nil {
		return BeginHandle{}, err
	}
	return BeginHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h BeginHandle) NodeID() NodeID { return h.id }

// Kind returns NodeBegin.
func (h BeginHandle) Kind() NonTerminalKind { return NodeBegin }

// View decomposes the node's children, skipping trivia.
func (h BeginHandle) View(t *Tree) (BeginView, error) {
	return h.ViewWithTrivia(t, nil)
}

// BeginView holds the children of a Begin node.
type BeginView struct {
	LBrace LBraceTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h BeginHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (BeginView, error) {
	c := openChildren(t, h.id, NodeBegin, trivia)
	view := BeginView{
		LBrace: LBraceTerminal{id: c.terminal(TokLBrace)},
	}
	if err := c.finish(); err != nil {
		return BeginView{}, err
	}
	return view, nil
}

// EndHandle refers to an End node.
type EndHandle struct{ id NodeID }

// NewEndHandle returns a handle for id after checking that it is an End node.
func NewEndHandle(t *Tree, id NodeID) (EndHandle, error) {
	if err := checkNonTerminal(t, id, NodeEnd); err != nil {
		return EndHandle{}, err
	}
	return EndHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h EndHandle) NodeID() NodeID { return h.id }

// Kind returns NodeEnd.
func (h EndHandle) Kind() NonTerminalKind { return NodeEnd }

// View decomposes the node's children, skipping trivia.
func (h EndHandle) View(t *Tree) (EndView, error) {
	return h.ViewWithTrivia(t, nil)
}

// EndView holds the children of an End node.
type EndView struct {
	RBrace RBraceTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h EndHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (EndView, error) {
	c := openChildren(t, h.id, NodeEnd, trivia)
	view := EndView{
		RBrace: RBraceTerminal{id: c.terminal(TokRBrace)},
	}
	if err := c.finish(); err != nil {
		return EndView{}, err
	}
	return view, nil
}

// BindHandle refers to a Bind node.
type BindHandle struct{ id NodeID }

// NewBindHandle returns a handle for id after checking that it is a Bind node.
func NewBindHandle(t *Tree, id NodeID) (BindHandle, error) {
	if err := checkNonTerminal(t, id, NodeBind); err != nil {
		return BindHandle{}, err
	}
	return BindHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h BindHandle) NodeID() NodeID { return h.id }

// Kind returns NodeBind.
func (h BindHandle) Kind() NonTerminalKind { return NodeBind }

// View decomposes the node's children, skipping trivia.
func (h BindHandle) View(t *Tree) (BindView, error) {
	return h.ViewWithTrivia(t, nil)
}

// BindView holds the children of a Bind node.
type BindView struct {
	Bind BindTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h BindHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (BindView, error) {
	c := openChildren(t, h.id, NodeBind, trivia)
	view := BindView{
		Bind: BindTerminal{id: c.terminal(TokBind)},
	}
	if err := c.finish(); err != nil {
		return BindView{}, err
	}
	return view, nil
}

// ArrayHandle refers to an Array node.
type ArrayHandle struct{ id NodeID }

// NewArrayHandle returns a handle for id after checking that it is an Array node.
func NewArrayHandle(t *Tree, id NodeID) (ArrayHandle, error) {
	if err := checkNonTerminal(t, id, NodeArray); err != nil {
		return ArrayHandle{}, err
	}
	return ArrayHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h ArrayHandle) NodeID() NodeID { return h.id }

// Kind returns NodeArray.
func (h ArrayHandle) Kind() NonTerminalKind { return NodeArray }

// View decomposes the node's children, skipping trivia.
func (h ArrayHandle) View(t *Tree) (ArrayView, error) {
	return h.ViewWithTrivia(t, nil)
}

// ArrayView holds the children of an Array node.
type ArrayView struct {
	ArrayBegin ArrayBeginHandle
	ArrayList  ArrayListHandle
	ArrayEnd   ArrayEndHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h ArrayHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (ArrayView, error) {
	c := openChildren(t, h.id, NodeArray, trivia)
	view := ArrayView{
		ArrayBegin: ArrayBeginHandle{id: c.nonTerminal(NodeArrayBegin)},
		ArrayList:  ArrayListHandle{id: c.nonTerminal(NodeArrayList)},
		ArrayEnd:   ArrayEndHandle{id: c.nonTerminal(NodeArrayEnd)},
	}
	if err := c.finish(); err != nil {
		return ArrayView{}, err
	}
	return view, nil
}

func (ArrayHandle) isValueView() {}

// ArrayBeginHandle refers to an ArrayBegin node.
type ArrayBeginHandle struct{ id NodeID }

// NewArrayBeginHandle returns a handle for id after checking that it is an ArrayBegin node.
func NewArrayBeginHandle(t *Tree, id NodeID) (ArrayBeginHandle, error) {
	if err := checkNonTerminal(t, id, NodeArrayBegin); err != nil {
		return ArrayBeginHandle{}, err
	}
	return ArrayBeginHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h ArrayBeginHandle) NodeID() NodeID { return h.id }

// Kind returns NodeArrayBegin.
func (h ArrayBeginHandle) Kind() NonTerminalKind { return NodeArrayBegin }

// View decomposes the node's children, skipping trivia.
func (h ArrayBeginHandle) View(t *Tree) (ArrayBeginView, error) {
	return h.ViewWithTrivia(t, nil)
}

// ArrayBeginView holds the children of an ArrayBegin node.
type ArrayBeginView struct {
	LBracket LBracketTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h ArrayBeginHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (ArrayBeginView, error) {
	c := openChildren(t, h.id, NodeArrayBegin, trivia)
	view := ArrayBeginView{
		LBracket: LBracketTerminal{id: c.terminal(TokLBracket)},
	}
	if err := c.finish(); err != nil {
		return ArrayBeginView{}, err
	}
	return view, nil
}

// ArrayEndHandle refers to an ArrayEnd node.
type ArrayEndHandle struct{ id NodeID }

// NewArrayEndHandle returns a handle for id after checking that it is an ArrayEnd node.
func NewArrayEndHandle(t *Tree, id NodeID) (ArrayEndHandle, error) {
	if err := checkNonTerminal(t, id, NodeArrayEnd); err != nil {
		return ArrayEndHandle{}, err
	}
	return ArrayEndHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h ArrayEndHandle) NodeID() NodeID { return h.id }

// Kind returns NodeArrayEnd.
func (h ArrayEndHandle) Kind() NonTerminalKind { return NodeArrayEnd }

// View decomposes the node's children, skipping trivia.
func (h ArrayEndHandle) View(t *Tree) (ArrayEndView, error) {
	return h.ViewWithTrivia(t, nil)
}

// ArrayEndView holds the children of an ArrayEnd node.
type ArrayEndView struct {
	RBracket RBracketTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h ArrayEndHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (ArrayEndView, error) {
	c := openChildren(t, h.id, NodeArrayEnd, trivia)
	view := ArrayEndView{
		RBracket: RBracketTerminal{id: c.terminal(TokRBracket)},
	}
	if err := c.finish(); err != nil {
		return ArrayEndView{}, err
	}
	return view, nil
}

// ArrayListHandle refers to an ArrayList node.
type ArrayListHandle struct{ id NodeID }

// NewArrayListHandle returns a handle for id after checking that it is an ArrayList node.
func NewArrayListHandle(t *Tree, id NodeID) (ArrayListHandle, error) {
	if err := checkNonTerminal(t, id, NodeArrayList); err != nil {
		return ArrayListHandle{}, err
	}
	return ArrayListHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h ArrayListHandle) NodeID() NodeID { return h.id }

// Kind returns NodeArrayList.
func (h ArrayListHandle) Kind() NonTerminalKind { return NodeArrayList }

// View decomposes the node's children, skipping trivia.
func (h ArrayListHandle) View(t *Tree) (*ArrayListView, error) {
	return h.ViewWithTrivia(t, nil)
}

// ArrayListView holds one element of an ArrayList list and the rest of the list.
type ArrayListView struct {
	Value     ValueHandle
	ArrayOpt  ArrayOptHandle
	ArrayList ArrayListHandle
}

// ArrayListItem is one element of an ArrayList list.
type ArrayListItem struct {
	Value    ValueHandle
	ArrayOpt ArrayOptHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
// The result is nil at the end of the list.
func (h ArrayListHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (*ArrayListView, error) {
	c := openChildren(t, h.id, NodeArrayList, trivia)
	if c.empty() {
		return nil, c.finish()
	}
	view := ArrayListView{
		Value:     ValueHandle{id: c.nonTerminal(NodeValue)},
		ArrayOpt:  ArrayOptHandle{id: c.nonTerminal(NodeArrayOpt)},
		ArrayList: ArrayListHandle{id: c.nonTerminal(NodeArrayList)},
	}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return &view, nil
}

// Items flattens the list starting at h.
func (h ArrayListHandle) Items(t *Tree) ([]ArrayListItem, error) {
	var items []ArrayListItem
	for cur := h; ; {
		view, err := cur.View(t)
		if err != nil {
			return nil, err
		}
		if view == nil {
			return items, nil
		}
		items = append(items, ArrayListItem{Value: view.Value, ArrayOpt: view.ArrayOpt})
		cur = view.ArrayList
	}
}

// Items returns the element held by v followed by the rest of the list.
func (v ArrayListView) Items(t *Tree) ([]ArrayListItem, error) {
	rest, err := v.ArrayList.Items(t)
	if err != nil {
		return nil, err
	}
	return append([]ArrayListItem{{Value: v.Value, ArrayOpt: v.ArrayOpt}}, rest...), nil
}

// ArrayOptHandle refers to an ArrayOpt node.
type ArrayOptHandle struct{ id NodeID }

// NewArrayOptHandle returns a handle for id after checking that it is an ArrayOpt node.
func NewArrayOptHandle(t *Tree, id NodeID) (ArrayOptHandle, error) {
	if err := checkNonTerminal(t, id, NodeArrayOpt); err != nil {
		return ArrayOptHandle{}, err
	}
	return ArrayOptHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h ArrayOptHandle) NodeID() NodeID { return h.id }

// Kind returns NodeArrayOpt.
func (h ArrayOptHandle) Kind() NonTerminalKind { return NodeArrayOpt }

// View decomposes the node's children, skipping trivia.
func (h ArrayOptHandle) View(t *Tree) (*CommaHandle, error) {
	return h.ViewWithTrivia(t, nil)
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
// The result is nil when the option is empty.
func (h ArrayOptHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (*CommaHandle, error) {
	c := openChildren(t, h.id, NodeArrayOpt, trivia)
	if c.empty() {
		return nil, c.finish()
	}
	view := CommaHandle{id: c.nonTerminal(NodeComma)}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return &view, nil
}

// CommaHandle refers to a Comma node.
type CommaHandle struct{ id NodeID }

// NewCommaHandle returns a handle for id after checking that it is a Comma node.
func NewCommaHandle(t *Tree, id NodeID) (CommaHandle, error) {
	if err := checkNonTerminal(t, id, NodeComma); err != nil {
		return CommaHandle{}, err
	}
	return CommaHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h CommaHandle) NodeID() NodeID { return h.id }

// Kind returns NodeComma.
func (h CommaHandle) Kind() NonTerminalKind { return NodeComma }

// View decomposes the node's children, skipping trivia.
func (h CommaHandle) View(t *Tree) (CommaView, error) {
	return h.ViewWithTrivia(t, nil)
}

// CommaView holds the children of a Comma node.
type CommaView struct {
	Comma CommaTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h CommaHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (CommaView, error) {
	c := openChildren(t, h.id, NodeComma, trivia)
	view := CommaView{
		Comma: CommaTerminal{id: c.terminal(TokComma)},
	}
	if err := c.finish(); err != nil {
		return CommaView{}, err
	}
	return view, nil
}

// ValueHandle refers to a Value node.
type ValueHandle struct{ id NodeID }

// NewValueHandle returns a handle for id after checking that it is a Value node.
func NewValueHandle(t *Tree, id NodeID) (ValueHandle, error) {
	if err := checkNonTerminal(t, id, NodeValue); err != nil {
		return ValueHandle{}, err
	}
	return ValueHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h ValueHandle) NodeID() NodeID { return h.id }

// Kind returns NodeValue.
func (h ValueHandle) Kind() NonTerminalKind { return NodeValue }

// View decomposes the node's children, skipping trivia.
func (h ValueHandle) View(t *Tree) (ValueView, error) {
	return h.ViewWithTrivia(t, nil)
}

// ValueView is one of ObjectHandle, ArrayHandle, IntegerHandle, BooleanHandle, NullHandle, StrContinuesHandle, TypedStrHandle, HoleHandle, CodeBlockHandle, NamedCodeBlockHandle, CodeHandle, NamedCodeHandle.
type ValueView interface {
	Handle
	isValueView()
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h ValueHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (ValueView, error) {
	c := openChildren(t, h.id, NodeValue, trivia)
	id, data := c.next()
	var view ValueView
	if c.err == nil {
		switch {
		case data.isNonTerminal(NodeObject):
			view = ObjectHandle{id: id}
		case data.isNonTerminal(NodeArray):
			view = ArrayHandle{id: id}
		case data.isNonTerminal(NodeInteger):
			view = IntegerHandle{id: id}
		case data.isNonTerminal(NodeBoolean):
			view = BooleanHandle{id: id}
		case data.isNonTerminal(NodeNull):
			view = NullHandle{id: id}
		case data.isNonTerminal(NodeStrContinues):
			view = StrContinuesHandle{id: id}
		case data.isNonTerminal(NodeTypedStr):
			view = TypedStrHandle{id: id}
		case data.isNonTerminal(NodeHole):
			view = HoleHandle{id: id}
		case data.isNonTerminal(NodeCodeBlock):
			view = CodeBlockHandle{id: id}
		case data.isNonTerminal(NodeNamedCodeBlock):
			view = NamedCodeBlockHandle{id: id}
		case data.isNonTerminal(NodeCode):
			view = CodeHandle{id: id}
		case data.isNonTerminal(NodeNamedCode):
			view = NamedCodeHandle{id: id}
		default:
			c.unexpected(id, data)
		}
	}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return view, nil
}

// BooleanHandle refers to a Boolean node.
type BooleanHandle struct{ id NodeID }

// NewBooleanHandle returns a handle for id after checking that it is a Boolean node.
func NewBooleanHandle(t *Tree, id NodeID) (BooleanHandle, error) {
	if err := checkNonTerminal(t, id, NodeBoolean); err != nil {
		return BooleanHandle{}, err
	}
	return BooleanHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h BooleanHandle) NodeID() NodeID { return h.id }

// Kind returns NodeBoolean.
func (h BooleanHandle) Kind() NonTerminalKind { return NodeBoolean }

// View decomposes the node's children, skipping trivia.
func (h BooleanHandle) View(t *Tree) (BooleanView, error) {
	return h.ViewWithTrivia(t, nil)
}

// BooleanView is one of TrueHandle, FalseHandle.
type BooleanView interface {
	Handle
	isBooleanView()
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h BooleanHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (BooleanView, error) {
	c := openChildren(t, h.id, NodeBoolean, trivia)
	id, data := c.next()
	var view BooleanView
	if c.err == nil {
		switch {
		case data.isNonTerminal(NodeTrue):
			view = TrueHandle{id: id}
		case data.isNonTerminal(NodeFalse):
			view = FalseHandle{id: id}
		default:
			c.unexpected(id, data)
		}
	}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return view, nil
}

func (BooleanHandle) isValueView() {}

// TrueHandle refers to a True node.
type TrueHandle struct{ id NodeID }

// NewTrueHandle returns a handle for id after checking that it is a True node.
func NewTrueHandle(t *Tree, id NodeID) (TrueHandle, error) {
	if err := checkNonTerminal(t, id, NodeTrue); err != nil {
		return TrueHandle{}, err
	}
	return TrueHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h TrueHandle) NodeID() NodeID { return h.id }

// Kind returns NodeTrue.
func (h TrueHandle) Kind() NonTerminalKind { return NodeTrue }

// View decomposes the node's children, skipping trivia.
func (h TrueHandle) View(t *Tree) (TrueView, error) {
	return h.ViewWithTrivia(t, nil)
}

// TrueView holds the children of a True node.
type TrueView struct {
	True TrueTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h TrueHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (TrueView, error) {
	c := openChildren(t, h.id, NodeTrue, trivia)
	view := TrueView{
		True: TrueTerminal{id: c.terminal(TokTrue)},
	}
	if err := c.finish(); err != nil {
		return TrueView{}, err
	}
	return view, nil
}

func (TrueHandle) isBooleanView() {}

// FalseHandle refers to a False node.
type FalseHandle struct{ id NodeID }

// NewFalseHandle returns a handle for id after checking that it is a False node.
func NewFalseHandle(t *Tree, id NodeID) (FalseHandle, error) {
	if err := checkNonTerminal(t, id, NodeFalse); err != nil {
		return FalseHandle{}, err
	}
	return FalseHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h FalseHandle) NodeID() NodeID { return h.id }

// Kind returns NodeFalse.
func (h FalseHandle) Kind() NonTerminalKind { return NodeFalse }

// View decomposes the node's children, skipping trivia.
func (h FalseHandle) View(t *Tree) (FalseView, error) {
	return h.ViewWithTrivia(t, nil)
}

// FalseView holds the children of a False node.
type FalseView struct {
	False FalseTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h FalseHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (FalseView, error) {
	c := openChildren(t, h.id, NodeFalse, trivia)
	view := FalseView{
		False: FalseTerminal{id: c.terminal(TokFalse)},
	}
	if err := c.finish(); err != nil {
		return FalseView{}, err
	}
	return view, nil
}

func (FalseHandle) isBooleanView() {}

// NullHandle refers to a Null node.
type NullHandle struct{ id NodeID }

// NewNullHandle returns a handle for id after checking that it is a Null node.
func NewNullHandle(t *Tree, id NodeID) (NullHandle, error) {
	if err := checkNonTerminal(t, id, NodeNull); err != nil {
		return NullHandle{}, err
	}
	return NullHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h NullHandle) NodeID() NodeID { return h.id }

// Kind returns NodeNull.
func (h NullHandle) Kind() NonTerminalKind { return NodeNull }

// View decomposes the node's children, skipping trivia.
func (h NullHandle) View(t *Tree) (NullView, error) {
	return h.ViewWithTrivia(t, nil)
}

// NullView holds the children of a Null node.
type NullView struct {
	Null NullTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h NullHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (NullView, error) {
	c := openChildren(t, h.id, NodeNull, trivia)
	view := NullView{
		Null: NullTerminal{id: c.terminal(TokNull)},
	}
	if err := c.finish(); err != nil {
		return NullView{}, err
	}
	return view, nil
}

func (NullHandle) isValueView() {}

// IntegerHandle refers to an Integer node.
type IntegerHandle struct{ id NodeID }

// NewIntegerHandle returns a handle for id after checking that it is an Integer node.
func NewIntegerHandle(t *Tree, id NodeID) (IntegerHandle, error) {
	if err := checkNonTerminal(t, id, NodeInteger); err != nil {
		return IntegerHandle{}, err
	}
	return IntegerHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h IntegerHandle) NodeID() NodeID { return h.id }

// Kind returns NodeInteger.
func (h IntegerHandle) Kind() NonTerminalKind { return NodeInteger }

// View decomposes the node's children, skipping trivia.
func (h IntegerHandle) View(t *Tree) (IntegerView, error) {
	return h.ViewWithTrivia(t, nil)
}

// IntegerView holds the children of an Integer node.
type IntegerView struct {
	Integer IntegerTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h IntegerHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (IntegerView, error) {
	c := openChildren(t, h.id, NodeInteger, trivia)
	view := IntegerView{
		Integer: IntegerTerminal{id: c.terminal(TokInteger)},
	}
	if err := c.finish(); err != nil {
		return IntegerView{}, err
	}
	return view, nil
}

func (IntegerHandle) isKeyBaseView() {}

func (IntegerHandle) isValueView() {}

// HoleHandle refers to a Hole node.
type HoleHandle struct{ id NodeID }

// NewHoleHandle returns a handle for id after checking that it is a Hole node.
func NewHoleHandle(t *Tree, id NodeID) (HoleHandle, error) {
	if err := checkNonTerminal(t, id, NodeHole); err != nil {
		return HoleHandle{}, err
	}
	return HoleHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h HoleHandle) NodeID() NodeID { return h.id }

// Kind returns NodeHole.
func (h HoleHandle) Kind() NonTerminalKind { return NodeHole }

// View decomposes the node's children, skipping trivia.
func (h HoleHandle) View(t *Tree) (HoleView, error) {
	return h.ViewWithTrivia(t, nil)
}

// HoleView holds the children of a Hole node.
type HoleView struct {
	Hole HoleTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h HoleHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (HoleView, error) {
	c := openChildren(t, h.id, NodeHole, trivia)
	view := HoleView{
		Hole: HoleTerminal{id: c.terminal(TokHole)},
	}
	if err := c.finish(); err != nil {
		return HoleView{}, err
	}
	return view, nil
}

func (HoleHandle) isValueView() {}

// StrHandle refers to a Str node.
type StrHandle struct{ id NodeID }

// NewStrHandle returns a handle for id after checking that it is a Str node.
func NewStrHandle(t *Tree, id NodeID) (StrHandle, error) {
	if err := checkNonTerminal(t, id, NodeStr); err != nil {
		return StrHandle{}, err
	}
	return StrHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h StrHandle) NodeID() NodeID { return h.id }

// Kind returns NodeStr.
func (h StrHandle) Kind() NonTerminalKind { return NodeStr }

// View decomposes the node's children, skipping trivia.
func (h StrHandle) View(t *Tree) (StrView, error) {
	return h.ViewWithTrivia(t, nil)
}

// StrView holds the children of a Str node.
type StrView struct {
	Quote  QuoteHandle
	InStr  InStrHandle
	Quote2 QuoteHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h StrHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (StrView, error) {
	c := openChildren(t, h.id, NodeStr, trivia)
	view := StrView{
		Quote:  QuoteHandle{id: c.nonTerminal(NodeQuote)},
		InStr:  InStrHandle{id: c.nonTerminal(NodeInStr)},
		Quote2: QuoteHandle{id: c.nonTerminal(NodeQuote)},
	}
	if err := c.finish(); err != nil {
		return StrView{}, err
	}
	return view, nil
}

func (StrHandle) isKeyBaseView() {}

// StrContinuesHandle refers to a StrContinues node.
type StrContinuesHandle struct{ id NodeID }

// NewStrContinuesHandle returns a handle for id after checking that it is a StrContinues node.
func NewStrContinuesHandle(t *Tree, id NodeID) (StrContinuesHandle, error) {
	if err := checkNonTerminal(t, id, NodeStrContinues); err != nil {
		return StrContinuesHandle{}, err
	}
	return StrContinuesHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h StrContinuesHandle) NodeID() NodeID { return h.id }

// Kind returns NodeStrContinues.
func (h StrContinuesHandle) Kind() NonTerminalKind { return NodeStrContinues }

// View decomposes the node's children, skipping trivia.
func (h StrContinuesHandle) View(t *Tree) (StrContinuesView, error) {
	return h.ViewWithTrivia(t, nil)
}

// StrContinuesView holds the children of a StrContinues node.
type StrContinuesView struct {
	Str              StrHandle
	StrContinuesList StrContinuesListHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h StrContinuesHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (StrContinuesView, error) {
	c := openChildren(t, h.id, NodeStrContinues, trivia)
	view := StrContinuesView{
		Str:              StrHandle{id: c.nonTerminal(NodeStr)},
		StrContinuesList: StrContinuesListHandle{id: c.nonTerminal(NodeStrContinuesList)},
	}
	if err := c.finish(); err != nil {
		return StrContinuesView{}, err
	}
	return view, nil
}

func (StrContinuesHandle) isValueView() {}

// StrContinuesListHandle refers to a StrContinuesList node.
type StrContinuesListHandle struct{ id NodeID }

// NewStrContinuesListHandle returns a handle for id after checking that it is a StrContinuesList node.
func NewStrContinuesListHandle(t *Tree, id NodeID) (StrContinuesListHandle, error) {
	if err := checkNonTerminal(t, id, NodeStrContinuesList); err != nil {
		return StrContinuesListHandle{}, err
	}
	return StrContinuesListHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h StrContinuesListHandle) NodeID() NodeID { return h.id }

// Kind returns NodeStrContinuesList.
func (h StrContinuesListHandle) Kind() NonTerminalKind { return NodeStrContinuesList }

// View decomposes the node's children, skipping trivia.
func (h StrContinuesListHandle) View(t *Tree) (*StrContinuesListView, error) {
	return h.ViewWithTrivia(t, nil)
}

// StrContinuesListView holds one element of a StrContinuesList list and the rest of the list.
type StrContinuesListView struct {
	Continue         ContinueHandle
	Str              StrHandle
	StrContinuesList StrContinuesListHandle
}

// StrContinuesListItem is one element of a StrContinuesList list.
type StrContinuesListItem struct {
	Continue ContinueHandle
	Str      StrHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
// The result is nil at the end of the list.
func (h StrContinuesListHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (*StrContinuesListView, error) {
	c := openChildren(t, h.id, NodeStrContinuesList, trivia)
	if c.empty() {
		return nil, c.finish()
	}
	view := StrContinuesListView{
		Continue:         ContinueHandle{id: c.nonTerminal(NodeContinue)},
		Str:              StrHandle{id: c.nonTerminal(NodeStr)},
		StrContinuesList: StrContinuesListHandle{id: c.nonTerminal(NodeStrContinuesList)},
	}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return &view, nil
}

// Items flattens the list starting at h.
func (h StrContinuesListHandle) Items(t *Tree) ([]StrContinuesListItem, error) {
	var items []StrContinuesListItem
	for cur := h; ; {
		view, err := cur.View(t)
		if err != nil {
			return nil, err
		}
		if view == nil {
			return items, nil
		}
		items = append(items, StrContinuesListItem{Continue: view.Continue, Str: view.Str})
		cur = view.StrContinuesList
	}
}

// Items returns the element held by v followed by the rest of the list.
func (v StrContinuesListView) Items(t *Tree) ([]StrContinuesListItem, error) {
	rest, err := v.StrContinuesList.Items(t)
	if err != nil {
		return nil, err
	}
	return append([]StrContinuesListItem{{Continue: v.Continue, Str: v.Str}}, rest...), nil
}

// QuoteHandle refers to a Quote node.
type QuoteHandle struct{ id NodeID }

// NewQuoteHandle returns a handle for id after checking that it is a Quote node.
func NewQuoteHandle(t *Tree, id NodeID) (QuoteHandle, error) {
	if err := checkNonTerminal(t, id, NodeQuote); err != nil {
		return QuoteHandle{}, err
	}
	return QuoteHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h QuoteHandle) NodeID() NodeID { return h.id }

// Kind returns NodeQuote.
func (h QuoteHandle) Kind() NonTerminalKind { return NodeQuote }

// View decomposes the node's children, skipping trivia.
func (h QuoteHandle) View(t *Tree) (QuoteView, error) {
	return h.ViewWithTrivia(t, nil)
}

// QuoteView holds the children of a Quote node.
type QuoteView struct {
	Quote QuoteTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h QuoteHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (QuoteView, error) {
	c := openChildren(t, h.id, NodeQuote, trivia)
	view := QuoteView{
		Quote: QuoteTerminal{id: c.terminal(TokQuote)},
	}
	if err := c.finish(); err != nil {
		return QuoteView{}, err
	}
	return view, nil
}

// TypedQuoteHandle refers to a TypedQuote node.
type TypedQuoteHandle struct{ id NodeID }

// NewTypedQuoteHandle returns a handle for id after checking that it is a TypedQuote node.
func NewTypedQuoteHandle(t *Tree, id NodeID) (TypedQuoteHandle, error) {
	if err := checkNonTerminal(t, id, NodeTypedQuote); err != nil {
		return TypedQuoteHandle{}, err
	}
	return TypedQuoteHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h TypedQuoteHandle) NodeID() NodeID { return h.id }

// Kind returns NodeTypedQuote.
func (h TypedQuoteHandle) Kind() NonTerminalKind { return NodeTypedQuote }

// View decomposes the node's children, skipping trivia.
func (h TypedQuoteHandle) View(t *Tree) (TypedQuoteView, error) {
	return h.ViewWithTrivia(t, nil)
}

// TypedQuoteView holds the children of a TypedQuote node.
type TypedQuoteView struct {
	TypedQuote TypedQuoteTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h TypedQuoteHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (TypedQuoteView, error) {
	c := openChildren(t, h.id, NodeTypedQuote, trivia)
	view := TypedQuoteView{
		TypedQuote: TypedQuoteTerminal{id: c.terminal(TokTypedQuote)},
	}
	if err := c.finish(); err != nil {
		return TypedQuoteView{}, err
	}
	return view, nil
}

// TypedStrHandle refers to a TypedStr node.
type TypedStrHandle struct{ id NodeID }

// NewTypedStrHandle returns a handle for id after checking that it is a TypedStr node.
func NewTypedStrHandle(t *Tree, id NodeID) (TypedStrHandle, error) {
	if err := checkNonTerminal(t, id, NodeTypedStr); err != nil {
		return TypedStrHandle{}, err
	}
	return TypedStrHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h TypedStrHandle) NodeID() NodeID { return h.id }

// Kind returns NodeTypedStr.
func (h TypedStrHandle) Kind() NonTerminalKind { return NodeTypedStr }

// View decomposes the node's children, skipping trivia.
func (h TypedStrHandle) View(t *Tree) (TypedStrView, error) {
	return h.ViewWithTrivia(t, nil)
}

// TypedStrView holds the children of a TypedStr node.
type TypedStrView struct {
	TypedQuote TypedQuoteHandle
	InStr      InStrHandle
	Quote      QuoteHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h TypedStrHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (TypedStrView, error) {
	c := openChildren(t, h.id, NodeTypedStr, trivia)
	view := TypedStrView{
		TypedQuote: TypedQuoteHandle{id: c.nonTerminal(NodeTypedQuote)},
		InStr:      InStrHandle{id: c.nonTerminal(NodeInStr)},
		Quote:      QuoteHandle{id: c.nonTerminal(NodeQuote)},
	}
	if err := c.finish(); err != nil {
		return TypedStrView{}, err
	}
	return view, nil
}

func (TypedStrHandle) isValueView() {}

// InStrHandle refers to an InStr node.
type InStrHandle struct{ id NodeID }

// NewInStrHandle returns a handle for id after checking that it is an InStr node.
func NewInStrHandle(t *Tree, id NodeID) (InStrHandle, error) {
	if err := checkNonTerminal(t, id, NodeInStr); err != nil {
		return InStrHandle{}, err
	}
	return InStrHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h InStrHandle) NodeID() NodeID { return h.id }

// Kind returns NodeInStr.
func (h InStrHandle) Kind() NonTerminalKind { return NodeInStr }

// View decomposes the node's children, skipping trivia.
func (h InStrHandle) View(t *Tree) (InStrView, error) {
	return h.ViewWithTrivia(t, nil)
}

// InStrView holds the children of an InStr node.
type InStrView struct {
	InStr InStrTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h InStrHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (InStrView, error) {
	c := openChildren(t, h.id, NodeInStr, trivia)
	view := InStrView{
		InStr: InStrTerminal{id: c.terminal(TokInStr)},
	}
	if err := c.finish(); err != nil {
		return InStrView{}, err
	}
	return view, nil
}

// ContinueHandle refers to a Continue node.
type ContinueHandle struct{ id NodeID }

// NewContinueHandle returns a handle for id after checking that it is a Continue node.
func NewContinueHandle(t *Tree, id NodeID) (ContinueHandle, error) {
	if err := checkNonTerminal(t, id, NodeContinue); err != nil {
		return ContinueHandle{}, err
	}
	return ContinueHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h ContinueHandle) NodeID() NodeID { return h.id }

// Kind returns NodeContinue.
func (h ContinueHandle) Kind() NonTerminalKind { return NodeContinue }

// View decomposes the node's children, skipping trivia.
func (h ContinueHandle) View(t *Tree) (ContinueView, error) {
	return h.ViewWithTrivia(t, nil)
}

// ContinueView holds the children of a Continue node.
type ContinueView struct {
	Esc EscTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h ContinueHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (ContinueView, error) {
	c := openChildren(t, h.id, NodeContinue, trivia)
	view := ContinueView{
		Esc: EscTerminal{id: c.terminal(TokEsc)},
	}
	if err := c.finish(); err != nil {
		return ContinueView{}, err
	}
	return view, nil
}

// TextHandle refers to a Text node.
type TextHandle struct{ id NodeID }

// NewTextHandle returns a handle for id after checking that it is a Text node.
func NewTextHandle(t *Tree, id NodeID) (TextHandle, error) {
	if err := checkNonTerminal(t, id, NodeText); err != nil {
		return TextHandle{}, err
	}
	return TextHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h TextHandle) NodeID() NodeID { return h.id }

// Kind returns NodeText.
func (h TextHandle) Kind() NonTerminalKind { return NodeText }

// View decomposes the node's children, skipping trivia.
func (h TextHandle) View(t *Tree) (TextView, error) {
	return h.ViewWithTrivia(t, nil)
}

// TextView holds the children of a Text node.
type TextView struct {
	Text TextTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h TextHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (TextView, error) {
	c := openChildren(t, h.id, NodeText, trivia)
	view := TextView{
		Text: TextTerminal{id: c.terminal(TokText)},
	}
	if err := c.finish(); err != nil {
		return TextView{}, err
	}
	return view, nil
}

// TextStartHandle refers to a TextStart node.
type TextStartHandle struct{ id NodeID }

// NewTextStartHandle returns a handle for id after checking that it is a TextStart node.
func NewTextStartHandle(t *Tree, id NodeID) (TextStartHandle, error) {
	if err := checkNonTerminal(t, id, NodeTextStart); err != nil {
		return TextStartHandle{}, err
	}
	return TextStartHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h TextStartHandle) NodeID() NodeID { return h.id }

// Kind returns NodeTextStart.
func (h TextStartHandle) Kind() NonTerminalKind { return NodeTextStart }

// View decomposes the node's children, skipping trivia.
func (h TextStartHandle) View(t *Tree) (TextStartView, error) {
	return h.ViewWithTrivia(t, nil)
}

// TextStartView holds the children of a TextStart node.
type TextStartView struct {
	TextStart TextStartTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h TextStartHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (TextStartView, error) {
	c := openChildren(t, h.id, NodeTextStart, trivia)
	view := TextStartView{
		TextStart: TextStartTerminal{id: c.terminal(TokTextStart)},
	}
	if err := c.finish(); err != nil {
		return TextStartView{}, err
	}
	return view, nil
}

// NamedCodeBlockHandle refers to a NamedCodeBlock node.
type NamedCodeBlockHandle struct{ id NodeID }

// NewNamedCodeBlockHandle returns a handle for id after checking that it is a NamedCodeBlock node.
func NewNamedCodeBlockHandle(t *Tree, id NodeID) (NamedCodeBlockHandle, error) {
	if err := checkNonTerminal(t, id, NodeNamedCodeBlock); err != nil {
		return NamedCodeBlockHandle{}, err
	}
	return NamedCodeBlockHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h NamedCodeBlockHandle) NodeID() NodeID { return h.id }

// Kind returns NodeNamedCodeBlock.
func (h NamedCodeBlockHandle) Kind() NonTerminalKind { return NodeNamedCodeBlock }

// View decomposes the node's children, skipping trivia.
func (h NamedCodeBlockHandle) View(t *Tree) (NamedCodeBlockView, error) {
	return h.ViewWithTrivia(t, nil)
}

// NamedCodeBlockView holds the children of a NamedCodeBlock node.
type NamedCodeBlockView struct {
	NamedCodeBlockBegin NamedCodeBlockBeginHandle
	CodeBlockTailCommon CodeBlockTailCommonHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h NamedCodeBlockHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (NamedCodeBlockView, error) {
	c := openChildren(t, h.id, NodeNamedCodeBlock, trivia)
	view := NamedCodeBlockView{
		NamedCodeBlockBegin: NamedCodeBlockBeginHandle{id: c.nonTerminal(NodeNamedCodeBlockBegin)},
		CodeBlockTailCommon: CodeBlockTailCommonHandle{id: c.nonTerminal(NodeCodeBlockTailCommon)},
	}
	if err := c.finish(); err != nil {
		return NamedCodeBlockView{}, err
	}
	return view, nil
}

func (NamedCodeBlockHandle) isValueView() {}

// NamedCodeBlockBeginHandle refers to a NamedCodeBlockBegin node.
type NamedCodeBlockBeginHandle struct{ id NodeID }

// NewNamedCodeBlockBeginHandle returns a handle for id after checking that it is a NamedCodeBlockBegin node.
func NewNamedCodeBlockBeginHandle(t *Tree, id NodeID) (NamedCodeBlockBeginHandle, error) {
	if err := checkNonTerminal(t, id, NodeNamedCodeBlockBegin); err != nil {
		return NamedCodeBlockBeginHandle{}, err
	}
	return NamedCodeBlockBeginHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h NamedCodeBlockBeginHandle) NodeID() NodeID { return h.id }

// Kind returns NodeNamedCodeBlockBegin.
func (h NamedCodeBlockBeginHandle) Kind() NonTerminalKind { return NodeNamedCodeBlockBegin }

// View decomposes the node's children, skipping trivia.
func (h NamedCodeBlockBeginHandle) View(t *Tree) (NamedCodeBlockBeginView, error) {
	return h.ViewWithTrivia(t, nil)
}

// NamedCodeBlockBeginView holds the children of a NamedCodeBlockBegin node.
type NamedCodeBlockBeginView struct {
	NamedCodeBlockBegin NamedCodeBlockBeginTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h NamedCodeBlockBeginHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (NamedCodeBlockBeginView, error) {
	c := openChildren(t, h.id, NodeNamedCodeBlockBegin, trivia)
	view := NamedCodeBlockBeginView{
		NamedCodeBlockBegin: NamedCodeBlockBeginTerminal{id: c.terminal(TokNamedCodeBlockBegin)},
	}
	if err := c.finish(); err != nil {
		return NamedCodeBlockBeginView{}, err
	}
	return view, nil
}

// CodeBlockHandle refers to a CodeBlock node.
type CodeBlockHandle struct{ id NodeID }

// NewCodeBlockHandle returns a handle for id after checking that it is a CodeBlock node.
func NewCodeBlockHandle(t *Tree, id NodeID) (CodeBlockHandle, error) {
	if err := checkNonTerminal(t, id, NodeCodeBlock); err != nil {
		return CodeBlockHandle{}, err
	}
	return CodeBlockHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h CodeBlockHandle) NodeID() NodeID { return h.id }

// Kind returns NodeCodeBlock.
func (h CodeBlockHandle) Kind() NonTerminalKind { return NodeCodeBlock }

// View decomposes the node's children, skipping trivia.
func (h CodeBlockHandle) View(t *Tree) (CodeBlockView, error) {
	return h.ViewWithTrivia(t, nil)
}

// CodeBlockView holds the children of a CodeBlock node.
type CodeBlockView struct {
	CodeBlockDelimiter  CodeBlockDelimiterHandle
	CodeBlockTailCommon CodeBlockTailCommonHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h CodeBlockHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (CodeBlockView, error) {
	c := openChildren(t, h.id, NodeCodeBlock, trivia)
	view := CodeBlockView{
		CodeBlockDelimiter:  CodeBlockDelimiterHandle{id: c.nonTerminal(NodeCodeBlockDelimiter)},
		CodeBlockTailCommon: CodeBlockTailCommonHandle{id: c.nonTerminal(NodeCodeBlockTailCommon)},
	}
	if err := c.finish(); err != nil {
		return CodeBlockView{}, err
	}
	return view, nil
}

func (CodeBlockHandle) isValueView() {}

// CodeBlockDelimiterHandle refers to a CodeBlockDelimiter node.
type CodeBlockDelimiterHandle struct{ id NodeID }

// NewCodeBlockDelimiterHandle returns a handle for id after checking that it is a CodeBlockDelimiter node.
func NewCodeBlockDelimiterHandle(t *Tree, id NodeID) (CodeBlockDelimiterHandle, error) {
	if err := checkNonTerminal(t, id, NodeCodeBlockDelimiter); err != nil {
		return CodeBlockDelimiterHandle{}, err
	}
	return CodeBlockDelimiterHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h CodeBlockDelimiterHandle) NodeID() NodeID { return h.id }

// Kind returns NodeCodeBlockDelimiter.
func (h CodeBlockDelimiterHandle) Kind() NonTerminalKind { return NodeCodeBlockDelimiter }

// View decomposes the node's children, skipping trivia.
func (h CodeBlockDelimiterHandle) View(t *Tree) (CodeBlockDelimiterView, error) {
	return h.ViewWithTrivia(t, nil)
}

// CodeBlockDelimiterView holds the children of a CodeBlockDelimiter node.
type CodeBlockDelimiterView struct {
	CodeBlockDelimiter CodeBlockDelimiterTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h CodeBlockDelimiterHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (CodeBlockDelimiterView, error) {
	c := openChildren(t, h.id, NodeCodeBlockDelimiter, trivia)
	view := CodeBlockDelimiterView{
		CodeBlockDelimiter: CodeBlockDelimiterTerminal{id: c.terminal(TokCodeBlockDelimiter)},
	}
	if err := c.finish(); err != nil {
		return CodeBlockDelimiterView{}, err
	}
	return view, nil
}

// CodeBlockTailCommonHandle refers to a CodeBlockTailCommon node.
type CodeBlockTailCommonHandle struct{ id NodeID }

// NewCodeBlockTailCommonHandle returns a handle for id after checking that it is a CodeBlockTailCommon node.
func NewCodeBlockTailCommonHandle(t *Tree, id NodeID) (CodeBlockTailCommonHandle, error) {
	if err := checkNonTerminal(t, id, NodeCodeBlockTailCommon); err != nil {
		return CodeBlockTailCommonHandle{}, err
	}
	return CodeBlockTailCommonHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h CodeBlockTailCommonHandle) NodeID() NodeID { return h.id }

// Kind returns NodeCodeBlockTailCommon.
func (h CodeBlockTailCommonHandle) Kind() NonTerminalKind { return NodeCodeBlockTailCommon }

// View decomposes the node's children, skipping trivia.
func (h CodeBlockTailCommonHandle) View(t *Tree) (CodeBlockTailCommonView, error) {
	return h.ViewWithTrivia(t, nil)
}

// CodeBlockTailCommonView holds the children of a CodeBlockTailCommon node.
type CodeBlockTailCommonView struct {
	Newline                 NewlineHandle
	CodeBlockTailCommonList CodeBlockTailCommonListHandle
	CodeBlockTailCommonOpt  CodeBlockTailCommonOptHandle
	CodeBlockDelimiter      CodeBlockDelimiterHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h CodeBlockTailCommonHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (CodeBlockTailCommonView, error) {
	c := openChildren(t, h.id, NodeCodeBlockTailCommon, trivia)
	view := CodeBlockTailCommonView{
		Newline:                 NewlineHandle{id: c.nonTerminal(NodeNewline)},
		CodeBlockTailCommonList: CodeBlockTailCommonListHandle{id: c.nonTerminal(NodeCodeBlockTailCommonList)},
		CodeBlockTailCommonOpt:  CodeBlockTailCommonOptHandle{id: c.nonTerminal(NodeCodeBlockTailCommonOpt)},
		CodeBlockDelimiter:      CodeBlockDelimiterHandle{id: c.nonTerminal(NodeCodeBlockDelimiter)},
	}
	if err := c.finish(); err != nil {
		return CodeBlockTailCommonView{}, err
	}
	return view, nil
}

// CodeBlockTailCommonListHandle refers to a CodeBlockTailCommonList node.
type CodeBlockTailCommonListHandle struct{ id NodeID }

// NewCodeBlockTailCommonListHandle returns a handle for id after checking that it is a CodeBlockTailCommonList node.
func NewCodeBlockTailCommonListHandle(t *Tree, id NodeID) (CodeBlockTailCommonListHandle, error) {
	if err := checkNonTerminal(t, id, NodeCodeBlockTailCommonList); err != nil {
		return CodeBlockTailCommonListHandle{}, err
	}
	return CodeBlockTailCommonListHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h CodeBlockTailCommonListHandle) NodeID() NodeID { return h.id }

// Kind returns NodeCodeBlockTailCommonList.
func (h CodeBlockTailCommonListHandle) Kind() NonTerminalKind { return NodeCodeBlockTailCommonList }

// View decomposes the node's children, skipping trivia.
func (h CodeBlockTailCommonListHandle) View(t *Tree) (*CodeBlockTailCommonListView, error) {
	return h.ViewWithTrivia(t, nil)
}

// CodeBlockTailCommonListView holds one element of a CodeBlockTailCommonList list and the rest of the list.
type CodeBlockTailCommonListView struct {
	CodeBlockLine           CodeBlockLineHandle
	CodeBlockTailCommonList CodeBlockTailCommonListHandle
}

// CodeBlockTailCommonListItem is one element of a CodeBlockTailCommonList list.
type CodeBlockTailCommonListItem struct {
	CodeBlockLine CodeBlockLineHandle
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
// The result is nil at the end of the list.
func (h CodeBlockTailCommonListHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (*CodeBlockTailCommonListView, error) {
	c := openChildren(t, h.id, NodeCodeBlockTailCommonList, trivia)
	if c.empty() {
		return nil, c.finish()
	}
	view := CodeBlockTailCommonListView{
		CodeBlockLine:           CodeBlockLineHandle{id: c.nonTerminal(NodeCodeBlockLine)},
		CodeBlockTailCommonList: CodeBlockTailCommonListHandle{id: c.nonTerminal(NodeCodeBlockTailCommonList)},
	}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return &view, nil
}

// Items flattens the list starting at h.
func (h CodeBlockTailCommonListHandle) Items(t *Tree) ([]CodeBlockTailCommonListItem, error) {
	var items []CodeBlockTailCommonListItem
	for cur := h; ; {
		view, err := cur.View(t)
		if err != nil {
			return nil, err
		}
		if view == nil {
			return items, nil
		}
		items = append(items, CodeBlockTailCommonListItem{CodeBlockLine: view.CodeBlockLine})
		cur = view.CodeBlockTailCommonList
	}
}

// Items returns the element held by v followed by the rest of the list.
func (v CodeBlockTailCommonListView) Items(t *Tree) ([]CodeBlockTailCommonListItem, error) {
	rest, err := v.CodeBlockTailCommonList.Items(t)
	if err != nil {
		return nil, err
	}
	return append([]CodeBlockTailCommonListItem{{CodeBlockLine: v.CodeBlockLine}}, rest...), nil
}

// CodeBlockTailCommonOptHandle refers to a CodeBlockTailCommonOpt node.
type CodeBlockTailCommonOptHandle struct{ id NodeID }

// NewCodeBlockTailCommonOptHandle returns a handle for id after checking that it is a CodeBlockTailCommonOpt node.
func NewCodeBlockTailCommonOptHandle(t *Tree, id NodeID) (CodeBlockTailCommonOptHandle, error) {
	if err := checkNonTerminal(t, id, NodeCodeBlockTailCommonOpt); err != nil {
		return CodeBlockTailCommonOptHandle{}, err
	}
	return CodeBlockTailCommonOptHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h CodeBlockTailCommonOptHandle) NodeID() NodeID { return h.id }

// Kind returns NodeCodeBlockTailCommonOpt.
func (h CodeBlockTailCommonOptHandle) Kind() NonTerminalKind { return NodeCodeBlockTailCommonOpt }

// View decomposes the node's children, skipping trivia.
func (h CodeBlockTailCommonOptHandle) View(t *Tree) (*WsHandle, error) {
	return h.ViewWithTrivia(t, nil)
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
// The result is nil when the option is empty.
func (h CodeBlockTailCommonOptHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (*WsHandle, error) {
	c := openChildren(t, h.id, NodeCodeBlockTailCommonOpt, trivia)
	if c.empty() {
		return nil, c.finish()
	}
	view := WsHandle{id: c.nonTerminal(NodeWs)}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return &view, nil
}

// CodeBlockLineHandle refers to a CodeBlockLine node.
type CodeBlockLineHandle struct{ id NodeID }

// NewCodeBlockLineHandle returns a handle for id after checking that it is a CodeBlockLine node.
func NewCodeBlockLineHandle(t *Tree, id NodeID) (CodeBlockLineHandle, error) {
	if err := checkNonTerminal(t, id, NodeCodeBlockLine); err != nil {
		return CodeBlockLineHandle{}, err
	}
	return CodeBlockLineHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h CodeBlockLineHandle) NodeID() NodeID { return h.id }

// Kind returns NodeCodeBlockLine.
func (h CodeBlockLineHandle) Kind() NonTerminalKind { return NodeCodeBlockLine }

// View decomposes the node's children, skipping trivia.
func (h CodeBlockLineHandle) View(t *Tree) (CodeBlockLineView, error) {
	return h.ViewWithTrivia(t, nil)
}

// CodeBlockLineView holds the children of a CodeBlockLine node.
type CodeBlockLineView struct {
	CodeBlockLine CodeBlockLineTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h CodeBlockLineHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (CodeBlockLineView, error) {
	c := openChildren(t, h.id, NodeCodeBlockLine, trivia)
	view := CodeBlockLineView{
		CodeBlockLine: CodeBlockLineTerminal{id: c.terminal(TokCodeBlockLine)},
	}
	if err := c.finish(); err != nil {
		return CodeBlockLineView{}, err
	}
	return view, nil
}

// NewlineHandle refers to a Newline node.
type NewlineHandle struct{ id NodeID }

// NewNewlineHandle returns a handle for id after checking that it is a Newline node.
func NewNewlineHandle(t *Tree, id NodeID) (NewlineHandle, error) {
	if err := checkNonTerminal(t, id, NodeNewline); err != nil {
		return NewlineHandle{}, err
	}
	return NewlineHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h NewlineHandle) NodeID() NodeID { return h.id }

// Kind returns NodeNewline.
func (h NewlineHandle) Kind() NonTerminalKind { return NodeNewline }

// View decomposes the node's children, skipping trivia.
func (h NewlineHandle) View(t *Tree) (NewlineView, error) {
	return h.ViewWithTrivia(t, nil)
}

// NewlineView holds the children of a Newline node.
type NewlineView struct {
	Newline NewlineTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h NewlineHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (NewlineView, error) {
	c := openChildren(t, h.id, NodeNewline, trivia)
	view := NewlineView{
		Newline: NewlineTerminal{id: c.terminal(TokNewline)},
	}
	if err := c.finish(); err != nil {
		return NewlineView{}, err
	}
	return view, nil
}

// WsHandle refers to a Ws node.
type WsHandle struct{ id NodeID }

// NewWsHandle returns a handle for id after checking that it is a Ws node.
func NewWsHandle(t *Tree, id NodeID) (WsHandle, error) {
	if err := checkNonTerminal(t, id, NodeWs); err != nil {
		return WsHandle{}, err
	}
	return WsHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h WsHandle) NodeID() NodeID { return h.id }

// Kind returns NodeWs.
func (h WsHandle) Kind() NonTerminalKind { return NodeWs }

// View decomposes the node's children, skipping trivia.
func (h WsHandle) View(t *Tree) (WsView, error) {
	return h.ViewWithTrivia(t, nil)
}

// WsView holds the children of a Ws node.
type WsView struct {
	Ws WsTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h WsHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (WsView, error) {
	c := openChildren(t, h.id, NodeWs, trivia)
	view := WsView{
		Ws: WsTerminal{id: c.terminal(TokWs)},
	}
	if err := c.finish(); err != nil {
		return WsView{}, err
	}
	return view, nil
}

// CodeHandle refers to a Code node.
type CodeHandle struct{ id NodeID }

// NewCodeHandle returns a handle for id after checking that it is a Code node.
func NewCodeHandle(t *Tree, id NodeID) (CodeHandle, error) {
	if err := checkNonTerminal(t, id, NodeCode); err != nil {
		return CodeHandle{}, err
	}
	return CodeHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h CodeHandle) NodeID() NodeID { return h.id }

// Kind returns NodeCode.
func (h CodeHandle) Kind() NonTerminalKind { return NodeCode }

// View decomposes the node's children, skipping trivia.
func (h CodeHandle) View(t *Tree) (CodeView, error) {
	return h.ViewWithTrivia(t, nil)
}

// CodeView holds the children of a Code node.
type CodeView struct {
	Code CodeTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h CodeHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (CodeView, error) {
	c := openChildren(t, h.id, NodeCode, trivia)
	view := CodeView{
		Code: CodeTerminal{id: c.terminal(TokCode)},
	}
	if err := c.finish(); err != nil {
		return CodeView{}, err
	}
	return view, nil
}

func (CodeHandle) isValueView() {}

// NamedCodeHandle refers to a NamedCode node.
type NamedCodeHandle struct{ id NodeID }

// NewNamedCodeHandle returns a handle for id after checking that it is a NamedCode node.
func NewNamedCodeHandle(t *Tree, id NodeID) (NamedCodeHandle, error) {
	if err := checkNonTerminal(t, id, NodeNamedCode); err != nil {
		return NamedCodeHandle{}, err
	}
	return NamedCodeHandle{id: id}, nil
}

// NodeID returns the id of the node.
func (h NamedCodeHandle) NodeID() NodeID { return h.id }

// Kind returns NodeNamedCode.
func (h NamedCodeHandle) Kind() NonTerminalKind { return NodeNamedCode }

// View decomposes the node's children, skipping trivia.
func (h NamedCodeHandle) View(t *Tree) (NamedCodeView, error) {
	return h.ViewWithTrivia(t, nil)
}

// NamedCodeView holds the children of a NamedCode node.
type NamedCodeView struct {
	NamedCode NamedCodeTerminal
}

// ViewWithTrivia is View, reporting each skipped trivia node to trivia.
func (h NamedCodeHandle) ViewWithTrivia(t *Tree, trivia TriviaFunc) (NamedCodeView, error) {
	c := openChildren(t, h.id, NodeNamedCode, trivia)
	view := NamedCodeView{
		NamedCode: NamedCodeTerminal{id: c.terminal(TokNamedCode)},
	}
	if err := c.finish(); err != nil {
		return NamedCodeView{}, err
	}
	return view, nil
}

func (NamedCodeHandle) isValueView() {}
