package zrender

// TextConfig declares how a node's attached label is laid out relative to
// the node's bounding rect. Nil fields take defaults, so configs merge by
// shallow extension: states and SetTextConfig overwrite only the fields they
// define.
type TextConfig struct {
	// Position anchors the label to the rect. Unset resolves to inside.
	Position TextPosition
	// Offset shifts the anchor additively, in the label's space.
	Offset *Vec2
	// Rotation overrides the label's rotation. Nil resets it to zero.
	Rotation *float64
	// Distance is the gap between rect edge and anchor. Nil means 5.
	Distance *float64
	// Local keeps the label in the node's local space by parenting it to
	// the node instead of projecting the rect to world space.
	Local *bool
	// Inside forces the inside-color treatment on or off. Nil derives it
	// from the resolved position keyword.
	Inside *bool
	// InsideFill and InsideStroke override the automatic contrast pair used
	// for labels placed inside the node.
	InsideFill   *Color
	InsideStroke *Color
	// LayoutRect replaces the node's bounding rect for layout.
	LayoutRect *Rect
}

// mergeTextConfig returns a new config holding base's fields with over's
// defined fields written on top.
func mergeTextConfig(base, over *TextConfig) *TextConfig {
	var out TextConfig
	if base != nil {
		out = *base
	}
	if over == nil {
		return &out
	}
	if over.Position != TextPositionUnset {
		out.Position = over.Position
	}
	if over.Offset != nil {
		out.Offset = over.Offset
	}
	if over.Rotation != nil {
		out.Rotation = over.Rotation
	}
	if over.Distance != nil {
		out.Distance = over.Distance
	}
	if over.Local != nil {
		out.Local = over.Local
	}
	if over.Inside != nil {
		out.Inside = over.Inside
	}
	if over.InsideFill != nil {
		out.InsideFill = over.InsideFill
	}
	if over.InsideStroke != nil {
		out.InsideStroke = over.InsideStroke
	}
	if over.LayoutRect != nil {
		out.LayoutRect = over.LayoutRect
	}
	return &out
}

// SetTextConfig extends the node's label configuration with cfg's defined
// fields and marks the node dirty.
func (n *Node) SetTextConfig(cfg *TextConfig) {
	if cfg == nil {
		return
	}
	n.TextConfig = mergeTextConfig(n.TextConfig, cfg)
	n.MarkDirty()
}

// RemoveTextConfig clears the label configuration.
func (n *Node) RemoveTextConfig() {
	n.TextConfig = nil
	n.MarkDirty()
}

// SetDefaultTextColor sets the fill/stroke pair a label falls back to when
// its own style defines none. The resolver calls this with the inside
// contrast pair, or with nils to clear it.
func (n *Node) SetDefaultTextColor(fill, stroke *Color) {
	n.defaultFill = fill
	n.defaultStroke = stroke
}

// DefaultTextColor returns the label's fallback fill/stroke pair.
func (n *Node) DefaultTextColor() (fill, stroke *Color) {
	return n.defaultFill, n.defaultStroke
}

// calcTextPosition resolves a placement keyword against a bounding rect into
// an anchor point plus the alignment pair that pins the text to it. distance
// is the edge gap; nil means 5.
func calcTextPosition(pos TextPosition, distance *float64, rect Rect) (Vec2, TextAlign, VerticalAlign) {
	d := 5.0
	if distance != nil {
		d = *distance
	}
	x, y := rect.X, rect.Y
	halfW, halfH := rect.Width/2, rect.Height/2
	align, vAlign := AlignLeft, AlignTop

	switch pos {
	case TextPositionLeft:
		x -= d
		y += halfH
		align = AlignRight
		vAlign = AlignMiddle
	case TextPositionRight:
		x += rect.Width + d
		y += halfH
		vAlign = AlignMiddle
	case TextPositionTop:
		x += halfW
		y -= d
		align = AlignCenter
		vAlign = AlignBottom
	case TextPositionBottom:
		x += halfW
		y += rect.Height + d
		align = AlignCenter
	case TextPositionInsideLeft:
		x += d
		y += halfH
		vAlign = AlignMiddle
	case TextPositionInsideRight:
		x += rect.Width - d
		y += halfH
		align = AlignRight
		vAlign = AlignMiddle
	case TextPositionInsideTop:
		x += halfW
		y += d
		align = AlignCenter
	case TextPositionInsideBottom:
		x += halfW
		y += rect.Height - d
		align = AlignCenter
		vAlign = AlignBottom
	case TextPositionInsideTopLeft:
		x += d
		y += d
	case TextPositionInsideTopRight:
		x += rect.Width - d
		y += d
		align = AlignRight
	case TextPositionInsideBottomLeft:
		x += d
		y += rect.Height - d
		vAlign = AlignBottom
	case TextPositionInsideBottomRight:
		x += rect.Width - d
		y += rect.Height - d
		align = AlignRight
		vAlign = AlignBottom
	default: // inside
		x += halfW
		y += halfH
		align = AlignCenter
		vAlign = AlignMiddle
	}
	return Vec2{x, y}, align, vAlign
}

// updateAttachedLabel re-resolves the attached label's position, rotation,
// alignment, and fallback colors against the node's current bounding rect.
// The node's transform must already be up to date.
func (n *Node) updateAttachedLabel() {
	label := n.textContent
	if label == nil || label.Ignore {
		return
	}
	cfg := n.TextConfig
	if cfg == nil {
		cfg = &TextConfig{}
	}

	var rect Rect
	if cfg.LayoutRect != nil {
		rect = *cfg.LayoutRect
	} else if r, ok := n.GetBoundingRect(); ok {
		rect = r
	}

	if cfg.Local != nil && *cfg.Local {
		// Local labels ride the node's transform chain; the rect stays in
		// the node's own space.
		label.parent = n
	} else {
		label.parent = nil
		rect = rectApplyTransform(rect, n.matrix)
	}

	resolved := cfg.Position
	if resolved == TextPositionUnset {
		resolved = TextPositionInside
	}
	pos, align, vAlign := calcTextPosition(resolved, cfg.Distance, rect)

	label.Position = pos
	label.Origin = Vec2{}
	if cfg.Offset != nil {
		label.Position.X += cfg.Offset.X
		label.Position.Y += cfg.Offset.Y
		// Rotate about the pre-offset anchor, not the shifted one.
		label.Origin = Vec2{-cfg.Offset.X, -cfg.Offset.Y}
	}
	if cfg.Rotation != nil {
		label.Rotation = *cfg.Rotation
	} else {
		label.Rotation = 0
	}

	st := label.ensureStyle()
	st.TextAlign = align
	st.VerticalAlign = vAlign

	inside := resolved.IsInside()
	if cfg.Inside != nil {
		inside = *cfg.Inside
	}
	if inside {
		fill := ColorWhite
		if cfg.InsideFill != nil {
			fill = *cfg.InsideFill
		} else if n.InsideFillFunc != nil {
			fill = n.InsideFillFunc()
		}
		stroke := ColorBlack
		if cfg.InsideStroke != nil {
			stroke = *cfg.InsideStroke
		} else if n.InsideStrokeFunc != nil {
			stroke = n.InsideStrokeFunc(fill)
		}
		label.SetDefaultTextColor(&fill, &stroke)
	} else {
		label.SetDefaultTextColor(nil, nil)
	}
	label.MarkDirty()
}
