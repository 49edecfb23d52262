package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/goswon/pkg/cst"
	"github.com/yaklabco/goswon/pkg/langdetect"
	"github.com/yaklabco/goswon/pkg/parser"
)

var (
	// ErrDuplicateKey is returned when a document assigns the same leaf twice.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrPathConflict is returned when a key path runs through a value that
	// is not a map, or indexes a value that is not an array.
	ErrPathConflict = errors.New("key path conflicts with existing value")
	// ErrIndexOutOfRange is returned for an array marker beyond the next free slot.
	ErrIndexOutOfRange = errors.New("array index out of range")
	// ErrInvalidLiteral is returned for strings and integers that cannot be decoded.
	ErrInvalidLiteral = errors.New("invalid literal")
)

// KeyError records the key path at which extraction failed.
type KeyError struct {
	Path string
	Err  error
}

func (e *KeyError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// Parse parses input and extracts its value tree.
func Parse(input []byte) (*Map, error) {
	tree, err := parser.Parse(input)
	if err != nil {
		return nil, err
	}
	return Extract(tree, input)
}

// Extract builds the value tree of a parsed document. The tree must be
// well formed; recovered regions yield a *cst.ConstructError.
func Extract(tree *cst.Tree, input []byte) (*Map, error) {
	x := &extractor{tree: tree, input: input}

	root, err := cst.NewRootHandle(tree, tree.Root())
	if err != nil {
		return nil, err
	}
	view, err := root.View(tree)
	if err != nil {
		return nil, err
	}

	doc := NewMap()
	if err := x.swon(doc, view.Swon); err != nil {
		return nil, err
	}
	return doc, nil
}

// segment is one key of a key path.
type segment struct {
	name string
	// array is set for key[] and key[N]; index is -1 for key[].
	array bool
	index int
}

func (s segment) String() string {
	switch {
	case !s.array:
		return s.name
	case s.index < 0:
		return s.name + "[]"
	default:
		return s.name + "[" + strconv.Itoa(s.index) + "]"
	}
}

func pathString(path []segment) string {
	parts := make([]string, len(path))
	for i, s := range path {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// within reports err at path below prefix. Errors that carry no key path
// pass through unchanged.
func within(prefix []segment, err error) error {
	var keyErr *KeyError
	if err == nil || len(prefix) == 0 || !errors.As(err, &keyErr) {
		return err
	}
	return &KeyError{Path: pathString(prefix) + "." + keyErr.Path, Err: keyErr.Err}
}

type extractor struct {
	tree  *cst.Tree
	input []byte
}

type terminal interface {
	Data(t *cst.Tree) (cst.NodeData, error)
}

func (x *extractor) text(t terminal) (string, error) {
	data, err := t.Data(x.tree)
	if err != nil {
		return "", err
	}
	return data.String(x.input), nil
}

func (x *extractor) swon(scope *Map, h cst.SwonHandle) error {
	view, err := h.View(x.tree)
	if err != nil {
		return err
	}

	bindings, err := view.SwonList.Items(x.tree)
	if err != nil {
		return err
	}
	for _, item := range bindings {
		if err := x.binding(scope, item.Binding); err != nil {
			return err
		}
	}

	sections, err := view.SwonList0.Items(x.tree)
	if err != nil {
		return err
	}
	for _, item := range sections {
		if err := x.section(scope, item.Section); err != nil {
			return err
		}
	}
	return nil
}

func (x *extractor) section(scope *Map, h cst.SectionHandle) error {
	view, err := h.View(x.tree)
	if err != nil {
		return err
	}
	path, err := x.keys(view.Keys)
	if err != nil {
		return err
	}
	target, err := resolve(scope, path)
	if err != nil {
		return err
	}

	body, err := view.SectionBody.View(x.tree)
	if err != nil {
		return err
	}
	switch body := body.(type) {
	case cst.SectionBodyListHandle:
		items, err := body.Items(x.tree)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := x.binding(target, item.Binding); err != nil {
				return within(path, err)
			}
		}
		return nil
	case cst.SectionBindingHandle:
		return within(path, x.block(target, body))
	default:
		return fmt.Errorf("section body: unexpected %T", body)
	}
}

func (x *extractor) block(scope *Map, h cst.SectionBindingHandle) error {
	view, err := h.View(x.tree)
	if err != nil {
		return err
	}
	return x.swon(scope, view.Swon)
}

func (x *extractor) binding(scope *Map, h cst.BindingHandle) error {
	view, err := h.View(x.tree)
	if err != nil {
		return err
	}
	path, err := x.keys(view.Keys)
	if err != nil {
		return err
	}

	rhs, err := view.BindingRhs.View(x.tree)
	if err != nil {
		return err
	}
	switch rhs := rhs.(type) {
	case cst.ValueBindingHandle:
		rv, err := rhs.View(x.tree)
		if err != nil {
			return err
		}
		v, err := x.value(rv.Value)
		if err != nil {
			return &KeyError{Path: pathString(path), Err: err}
		}
		return assign(scope, path, v)
	case cst.SectionBindingHandle:
		target, err := resolve(scope, path)
		if err != nil {
			return err
		}
		return within(path, x.block(target, rhs))
	case cst.TextBindingHandle:
		tv, err := rhs.View(x.tree)
		if err != nil {
			return err
		}
		text, err := x.wrapped(tv.Text.View(x.tree))
		if err != nil {
			return err
		}
		return assign(scope, path, String(text))
	default:
		return fmt.Errorf("binding: unexpected %T", rhs)
	}
}

// wrapped returns the text of a single-terminal view.
func (x *extractor) wrapped(view cst.TextView, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return x.text(view.Text)
}

func (x *extractor) keys(h cst.KeysHandle) ([]segment, error) {
	view, err := h.View(x.tree)
	if err != nil {
		return nil, err
	}
	first, err := x.key(view.Key)
	if err != nil {
		return nil, err
	}
	path := []segment{first}

	rest, err := view.KeysList.Items(x.tree)
	if err != nil {
		return nil, err
	}
	for _, item := range rest {
		seg, err := x.key(item.Key)
		if err != nil {
			return nil, err
		}
		path = append(path, seg)
	}
	return path, nil
}

func (x *extractor) key(h cst.KeyHandle) (segment, error) {
	view, err := h.View(x.tree)
	if err != nil {
		return segment{}, err
	}
	base, err := view.KeyBase.View(x.tree)
	if err != nil {
		return segment{}, err
	}

	var seg segment
	switch base := base.(type) {
	case cst.IdentTerminal:
		seg.name, err = x.text(base)
	case cst.ExtensionNameSpaceHandle:
		var ext cst.ExtensionNameSpaceView
		if ext, err = base.View(x.tree); err == nil {
			seg.name, err = x.text(ext.Ident)
			seg.name = "$" + seg.name
		}
	case cst.StrHandle:
		seg.name, err = x.str(base)
	case cst.IntegerHandle:
		var iv cst.IntegerView
		if iv, err = base.View(x.tree); err == nil {
			seg.name, err = x.text(iv.Integer)
		}
	default:
		err = fmt.Errorf("key: unexpected %T", base)
	}
	if err != nil {
		return segment{}, err
	}

	marker, err := view.KeyOpt.View(x.tree)
	if err != nil || marker == nil {
		return seg, err
	}
	mv, err := marker.View(x.tree)
	if err != nil {
		return segment{}, err
	}
	seg.array, seg.index = true, -1
	idx, err := mv.ArrayMarkerOpt.View(x.tree)
	if err != nil || idx == nil {
		return seg, err
	}
	n, err := x.integer(*idx)
	if err != nil {
		return segment{}, err
	}
	if n < 0 || int64(int(n)) != n {
		return segment{}, &KeyError{Path: seg.name, Err: ErrIndexOutOfRange}
	}
	seg.index = int(n)
	return seg, nil
}

func (x *extractor) value(h cst.ValueHandle) (Value, error) {
	view, err := h.View(x.tree)
	if err != nil {
		return nil, err
	}

	switch v := view.(type) {
	case cst.ObjectHandle:
		return x.object(v)
	case cst.ArrayHandle:
		return x.array(v)
	case cst.IntegerHandle:
		n, err := x.integer(v)
		return Integer(n), err
	case cst.BooleanHandle:
		b, err := v.View(x.tree)
		if err != nil {
			return nil, err
		}
		_, isTrue := b.(cst.TrueHandle)
		return Bool(isTrue), nil
	case cst.NullHandle:
		return Null{}, nil
	case cst.HoleHandle:
		return Hole{}, nil
	case cst.StrContinuesHandle:
		return x.strContinues(v)
	case cst.TypedStrHandle:
		return x.typedStr(v)
	case cst.CodeHandle:
		return x.code(v)
	case cst.NamedCodeHandle:
		return x.namedCode(v)
	case cst.CodeBlockHandle:
		cv, err := v.View(x.tree)
		if err != nil {
			return nil, err
		}
		content, err := x.codeBlockBody(cv.CodeBlockTailCommon)
		if err != nil {
			return nil, err
		}
		return Code{Language: langdetect.Detect([]byte(content)), Content: content, Block: true}, nil
	case cst.NamedCodeBlockHandle:
		cv, err := v.View(x.tree)
		if err != nil {
			return nil, err
		}
		bv, err := cv.NamedCodeBlockBegin.View(x.tree)
		if err != nil {
			return nil, err
		}
		begin, err := x.text(bv.NamedCodeBlockBegin)
		if err != nil {
			return nil, err
		}
		content, err := x.codeBlockBody(cv.CodeBlockTailCommon)
		if err != nil {
			return nil, err
		}
		lang := langdetect.Normalize(strings.TrimPrefix(begin, "```"))
		return Code{Language: lang, Content: content, Block: true}, nil
	default:
		return nil, fmt.Errorf("value: unexpected %T", view)
	}
}

func (x *extractor) object(h cst.ObjectHandle) (*Map, error) {
	view, err := h.View(x.tree)
	if err != nil {
		return nil, err
	}
	items, err := view.ObjectList.Items(x.tree)
	if err != nil {
		return nil, err
	}

	m := NewMap()
	for _, item := range items {
		seg, err := x.key(item.Key)
		if err != nil {
			return nil, err
		}
		v, err := x.value(item.Value)
		if err != nil {
			return nil, &KeyError{Path: seg.String(), Err: err}
		}
		if err := assign(m, []segment{seg}, v); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (x *extractor) array(h cst.ArrayHandle) (*Array, error) {
	view, err := h.View(x.tree)
	if err != nil {
		return nil, err
	}
	items, err := view.ArrayList.Items(x.tree)
	if err != nil {
		return nil, err
	}

	arr := &Array{Items: make([]Value, 0, len(items))}
	for i, item := range items {
		v, err := x.value(item.Value)
		if err != nil {
			return nil, &KeyError{Path: "[" + strconv.Itoa(i) + "]", Err: err}
		}
		arr.Append(v)
	}
	return arr, nil
}

func (x *extractor) integer(h cst.IntegerHandle) (int64, error) {
	view, err := h.View(x.tree)
	if err != nil {
		return 0, err
	}
	lit, err := x.text(view.Integer)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(lit, "_", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: integer %s: %w", ErrInvalidLiteral, lit, err)
	}
	return n, nil
}

func (x *extractor) str(h cst.StrHandle) (string, error) {
	view, err := h.View(x.tree)
	if err != nil {
		return "", err
	}
	return x.inStr(view.InStr)
}

func (x *extractor) inStr(h cst.InStrHandle) (string, error) {
	view, err := h.View(x.tree)
	if err != nil {
		return "", err
	}
	raw, err := x.text(view.InStr)
	if err != nil {
		return "", err
	}
	if !strings.Contains(raw, `\`) {
		return raw, nil
	}
	s, err := strconv.Unquote(`"` + raw + `"`)
	if err != nil {
		return "", fmt.Errorf("%w: string %q: %w", ErrInvalidLiteral, raw, err)
	}
	return s, nil
}

func (x *extractor) strContinues(h cst.StrContinuesHandle) (String, error) {
	view, err := h.View(x.tree)
	if err != nil {
		return "", err
	}
	first, err := x.str(view.Str)
	if err != nil {
		return "", err
	}
	rest, err := view.StrContinuesList.Items(x.tree)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(first)
	for _, item := range rest {
		part, err := x.str(item.Str)
		if err != nil {
			return "", err
		}
		sb.WriteString(part)
	}
	return String(sb.String()), nil
}

func (x *extractor) typedStr(h cst.TypedStrHandle) (TypedString, error) {
	view, err := h.View(x.tree)
	if err != nil {
		return TypedString{}, err
	}
	qv, err := view.TypedQuote.View(x.tree)
	if err != nil {
		return TypedString{}, err
	}
	quote, err := x.text(qv.TypedQuote)
	if err != nil {
		return TypedString{}, err
	}
	s, err := x.inStr(view.InStr)
	if err != nil {
		return TypedString{}, err
	}
	return TypedString{Type: strings.TrimSuffix(quote, `"`), Value: s}, nil
}

func (x *extractor) code(h cst.CodeHandle) (Code, error) {
	view, err := h.View(x.tree)
	if err != nil {
		return Code{}, err
	}
	lit, err := x.text(view.Code)
	if err != nil {
		return Code{}, err
	}
	return Code{Content: strings.Trim(lit, "`")}, nil
}

func (x *extractor) namedCode(h cst.NamedCodeHandle) (Code, error) {
	view, err := h.View(x.tree)
	if err != nil {
		return Code{}, err
	}
	lit, err := x.text(view.NamedCode)
	if err != nil {
		return Code{}, err
	}
	name, body, _ := strings.Cut(lit, "`")
	return Code{Language: langdetect.Normalize(name), Content: strings.TrimSuffix(body, "`")}, nil
}

func (x *extractor) codeBlockBody(h cst.CodeBlockTailCommonHandle) (string, error) {
	view, err := h.View(x.tree)
	if err != nil {
		return "", err
	}
	lines, err := view.CodeBlockTailCommonList.Items(x.tree)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, item := range lines {
		lv, err := item.CodeBlockLine.View(x.tree)
		if err != nil {
			return "", err
		}
		line, err := x.text(lv.CodeBlockLine)
		if err != nil {
			return "", err
		}
		sb.WriteString(line)
	}
	return sb.String(), nil
}

// resolve returns the map a section or block path designates, creating
// intermediate maps and appending to arrays as the path requires.
func resolve(scope *Map, path []segment) (*Map, error) {
	m := scope
	for i, seg := range path {
		next, err := descend(m, seg)
		if err != nil {
			return nil, &KeyError{Path: pathString(path[:i+1]), Err: err}
		}
		m = next
	}
	return m, nil
}

func descend(m *Map, seg segment) (*Map, error) {
	if !seg.array {
		cur, ok := m.Get(seg.name)
		if !ok {
			child := NewMap()
			m.Set(seg.name, child)
			return child, nil
		}
		child, ok := cur.(*Map)
		if !ok {
			return nil, ErrPathConflict
		}
		return child, nil
	}

	arr, err := arrayAt(m, seg.name)
	if err != nil {
		return nil, err
	}
	switch {
	case seg.index < 0 || seg.index == arr.Len():
		child := NewMap()
		arr.Append(child)
		return child, nil
	case seg.index < arr.Len():
		child, ok := arr.Items[seg.index].(*Map)
		if !ok {
			return nil, ErrPathConflict
		}
		return child, nil
	default:
		return nil, ErrIndexOutOfRange
	}
}

func arrayAt(m *Map, name string) (*Array, error) {
	cur, ok := m.Get(name)
	if !ok {
		arr := &Array{}
		m.Set(name, arr)
		return arr, nil
	}
	arr, ok := cur.(*Array)
	if !ok {
		return nil, ErrPathConflict
	}
	return arr, nil
}

// assign stores v at path below scope.
func assign(scope *Map, path []segment, v Value) error {
	m, err := resolve(scope, path[:len(path)-1])
	if err != nil {
		return err
	}

	last := path[len(path)-1]
	fail := func(err error) error {
		return &KeyError{Path: pathString(path), Err: err}
	}
	if !last.array {
		if _, ok := m.Get(last.name); ok {
			return fail(ErrDuplicateKey)
		}
		m.Set(last.name, v)
		return nil
	}

	arr, err := arrayAt(m, last.name)
	if err != nil {
		return fail(err)
	}
	switch {
	case last.index < 0 || last.index == arr.Len():
		arr.Append(v)
		return nil
	case last.index < arr.Len():
		return fail(ErrDuplicateKey)
	default:
		return fail(ErrIndexOutOfRange)
	}
}
