package weft

var _ Content = (*Element)(nil)

// Content provides container-specific sizing and placement behavior.
// The base protocol invokes MeasureContent after deflating the element's
// margin from the available size, and ArrangeContent after deflating the
// margin from the final bounds. Each container type (StackPanel, DockPanel,
// Grid) supplies its own implementation.
type Content interface {
	// MeasureContent computes the size the element's content wants given
	// the available constraint. Either axis of available may be Inf.
	MeasureContent(available Size) Size

	// ArrangeContent positions the element's children within the given
	// content bounds.
	ArrangeContent(content Rect)
}

// Widget is implemented by every element in the visual tree, including
// containers that embed Element. It is how heterogeneous children and the
// attached-property accessors refer to nodes.
type Widget interface {
	AsElement() *Element
}

// Element is the base node of the visual tree. It owns its children
// directly and carries the measure/arrange state every container builds on.
//
// Concrete containers embed Element and wire themselves in with [Element.Init];
// a plain Element is a leaf with no intrinsic content size.
type Element struct {
	// Tree structure (single source of truth)
	children []*Element
	parent   *Element

	// Layout strategy for this node; nil for a plain leaf.
	content Content

	// Layout inputs
	visible             bool
	margin              Thickness
	width, height       float64 // explicit sizes, valid when the Set flags are true
	widthSet, heightSet bool
	minSize             Size
	maxSize             Size

	// Layout outputs
	desiredSize Size
	bounds      Rect

	// Dirty-invalidation state
	needsMeasure  bool
	needsArrange  bool
	measured      bool
	lastAvailable Size
}

// New creates a leaf Element with the given options.
// A leaf has no intrinsic content size; give it one with [WithSize].
func New(opts ...Option) *Element {
	e := &Element{}
	e.Init(nil, opts...)
	return e
}

// Init wires an element for use. Widget types that embed Element call Init
// with themselves as content so the base protocol dispatches to their
// MeasureContent/ArrangeContent; a nil content means a plain leaf.
func (e *Element) Init(content Content, opts ...Option) {
	e.content = content
	e.visible = true
	e.maxSize = InfiniteSize()
	e.needsMeasure = true
	e.needsArrange = true
	for _, opt := range opts {
		opt(e)
	}
}

// AsElement returns the element itself, satisfying [Widget].
func (e *Element) AsElement() *Element {
	return e
}

// MeasureContent returns the zero size; a plain leaf has no intrinsic
// content. Embedding types override this.
func (e *Element) MeasureContent(available Size) Size {
	return Size{}
}

// ArrangeContent is a no-op for a plain leaf. Embedding types override this.
func (e *Element) ArrangeContent(content Rect) {}
