package zrender

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandRect CommandType = iota
	CommandCircle
	CommandImage
	CommandText
)

// DrawCommand is a single draw instruction emitted during tree traversal.
type DrawCommand struct {
	Type      CommandType
	Node      *Node
	Transform [6]float64
	Fill      *Color
	Stroke    *Color
	Opacity   float64
	LineWidth float64
	Shape     Shape
	Text      string
	Align     TextAlign
	VAlign    VerticalAlign
	Clip      *Rect // world-space clip rect, nil when unclipped
}

// Painter renders a node tree to an ebiten image in two phases: Collect
// walks the tree, updates each node, and emits draw commands; Submit
// executes them. The phases are split so the traversal can run headless.
type Painter struct {
	commands []DrawCommand
	white    *ebiten.Image
	face     text.Face
	imgCache map[image.Image]*ebiten.Image
}

// NewPainter creates an empty painter.
func NewPainter() *Painter {
	return &Painter{}
}

// Paint collects and submits in one call.
func (p *Painter) Paint(screen *ebiten.Image, root *Node) {
	p.Collect(root)
	p.Submit(screen)
}

// Collect rebuilds the command list from the tree. Every visited node is
// updated (transform, then attached label) and its dirty flag consumed.
func (p *Painter) Collect(root *Node) {
	p.commands = p.commands[:0]
	p.collectNode(root, nil)
}

// Commands returns the commands emitted by the last Collect.
func (p *Painter) Commands() []DrawCommand {
	return p.commands
}

func (p *Painter) collectNode(n *Node, clip *Rect) {
	if n.Ignore {
		return
	}
	n.Update()
	n.ConsumeDirty()

	if cp := n.clipPath; cp != nil {
		cp.Update()
		cp.ConsumeDirty()
		if r, ok := cp.GetBoundingRect(); ok {
			world := rectApplyTransform(r, cp.matrix)
			if clip != nil {
				world = world.intersect(*clip)
			}
			clip = &world
		}
	}

	if n.IsGroup() {
		for _, child := range n.children {
			p.collectNode(child, clip)
		}
	} else {
		p.emit(n, clip)
	}

	// The attached label paints right after its host, under the same clip.
	if n.textContent != nil {
		p.collectNode(n.textContent, clip)
	}
}

func (p *Painter) emit(n *Node, clip *Rect) {
	opacity := 1.0
	lineWidth := 1.0
	var fill, stroke *Color
	var align TextAlign
	var vAlign VerticalAlign
	if st := n.Style; st != nil {
		opacity = st.Opacity
		fill = st.Fill
		stroke = st.Stroke
		lineWidth = st.LineWidth
		align = st.TextAlign
		vAlign = st.VerticalAlign
	}

	var typ CommandType
	switch n.Type {
	case NodeTypeRect:
		typ = CommandRect
	case NodeTypeCircle:
		typ = CommandCircle
	case NodeTypeImage:
		if n.Image == nil {
			return
		}
		typ = CommandImage
	case NodeTypeText:
		if n.Text == "" {
			return
		}
		typ = CommandText
		// Labels fall back to the resolver's contrast pair, then to black.
		if fill == nil {
			fill = n.defaultFill
		}
		if stroke == nil {
			stroke = n.defaultStroke
		}
		if fill == nil && stroke == nil {
			black := ColorBlack
			fill = &black
		}
	default:
		return
	}
	if opacity <= 0 {
		return
	}

	cmd := DrawCommand{
		Type:      typ,
		Node:      n,
		Transform: n.matrix,
		Fill:      fill,
		Stroke:    stroke,
		Opacity:   opacity,
		LineWidth: lineWidth,
		Text:      n.Text,
		Align:     align,
		VAlign:    vAlign,
		Clip:      clip,
	}
	if n.Shape != nil {
		cmd.Shape = *n.Shape
	}
	p.commands = append(p.commands, cmd)
}

// Submit executes the collected commands against dst.
func (p *Painter) Submit(dst *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := range p.commands {
		cmd := &p.commands[i]
		target := dst
		if cmd.Clip != nil {
			sub := clipSubImage(dst, *cmd.Clip)
			if sub == nil {
				continue
			}
			target = sub
		}
		switch cmd.Type {
		case CommandRect:
			p.submitRect(target, cmd, &op)
		case CommandCircle:
			p.submitCircle(target, cmd)
		case CommandImage:
			p.submitImage(target, cmd, &op)
		case CommandText:
			p.submitText(target, cmd)
		}
	}
}

// clipSubImage restricts dst to the clip rect. Nil means fully clipped out.
func clipSubImage(dst *ebiten.Image, r Rect) *ebiten.Image {
	rect := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	)
	rect = rect.Intersect(dst.Bounds())
	if rect.Empty() {
		return nil
	}
	return dst.SubImage(rect).(*ebiten.Image)
}

func (p *Painter) submitRect(target *ebiten.Image, cmd *DrawCommand, op *ebiten.DrawImageOptions) {
	sh := cmd.Shape
	if cmd.Fill != nil && sh.Width > 0 && sh.Height > 0 {
		op.GeoM.Reset()
		op.GeoM.Scale(sh.Width, sh.Height)
		op.GeoM.Translate(sh.X, sh.Y)
		op.GeoM.Concat(affineGeoM(cmd.Transform))
		op.ColorScale.Reset()
		scaleColor(&op.ColorScale, *cmd.Fill, cmd.Opacity)
		target.DrawImage(p.whiteImage(), op)
	}
	if cmd.Stroke != nil && cmd.LineWidth > 0 {
		w := cmd.LineWidth
		edges := [4]Rect{
			{sh.X - w/2, sh.Y - w/2, sh.Width + w, w},
			{sh.X - w/2, sh.Y + sh.Height - w/2, sh.Width + w, w},
			{sh.X - w/2, sh.Y + w/2, w, sh.Height - w},
			{sh.X + sh.Width - w/2, sh.Y + w/2, w, sh.Height - w},
		}
		for _, e := range edges {
			if e.Width <= 0 || e.Height <= 0 {
				continue
			}
			op.GeoM.Reset()
			op.GeoM.Scale(e.Width, e.Height)
			op.GeoM.Translate(e.X, e.Y)
			op.GeoM.Concat(affineGeoM(cmd.Transform))
			op.ColorScale.Reset()
			scaleColor(&op.ColorScale, *cmd.Stroke, cmd.Opacity)
			target.DrawImage(p.whiteImage(), op)
		}
	}
}

func (p *Painter) submitCircle(target *ebiten.Image, cmd *DrawCommand) {
	sh := cmd.Shape
	cx, cy := transformPoint(cmd.Transform, sh.X, sh.Y)
	// Circles don't survive non-uniform scale as circles; average the axes.
	sx := math.Hypot(cmd.Transform[0], cmd.Transform[1])
	sy := math.Hypot(cmd.Transform[2], cmd.Transform[3])
	r := float32(sh.R * (sx + sy) / 2)
	if r <= 0 {
		return
	}
	if cmd.Fill != nil {
		vector.DrawFilledCircle(target, float32(cx), float32(cy), r, nrgba(*cmd.Fill, cmd.Opacity), true)
	}
	if cmd.Stroke != nil && cmd.LineWidth > 0 {
		vector.StrokeCircle(target, float32(cx), float32(cy), r, float32(cmd.LineWidth), nrgba(*cmd.Stroke, cmd.Opacity), true)
	}
}

func (p *Painter) submitImage(target *ebiten.Image, cmd *DrawCommand, op *ebiten.DrawImageOptions) {
	src := p.ebitenImage(cmd.Node.Image)
	if src == nil {
		return
	}
	sh := cmd.Shape
	b := src.Bounds()
	op.GeoM.Reset()
	if sh.Width > 0 && sh.Height > 0 && b.Dx() > 0 && b.Dy() > 0 {
		op.GeoM.Scale(sh.Width/float64(b.Dx()), sh.Height/float64(b.Dy()))
	}
	op.GeoM.Translate(sh.X, sh.Y)
	op.GeoM.Concat(affineGeoM(cmd.Transform))
	op.ColorScale.Reset()
	a := float32(cmd.Opacity)
	op.ColorScale.Scale(a, a, a, a)
	target.DrawImage(src, op)
}

func (p *Painter) submitText(target *ebiten.Image, cmd *DrawCommand) {
	face := p.textFace()
	var primary, secondary text.Align
	switch cmd.Align {
	case AlignCenter:
		primary = text.AlignCenter
	case AlignRight:
		primary = text.AlignEnd
	}
	switch cmd.VAlign {
	case AlignMiddle:
		secondary = text.AlignCenter
	case AlignBottom:
		secondary = text.AlignEnd
	}

	if cmd.Stroke != nil {
		// Poor man's outline: the glyphs offset one pixel in each direction
		// under the fill pass.
		offsets := [4][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
		for _, o := range offsets {
			sop := &text.DrawOptions{}
			sop.PrimaryAlign = primary
			sop.SecondaryAlign = secondary
			sop.GeoM.Translate(o[0], o[1])
			sop.GeoM.Concat(affineGeoM(cmd.Transform))
			scaleColor(&sop.ColorScale, *cmd.Stroke, cmd.Opacity)
			text.Draw(target, cmd.Text, face, sop)
		}
	}
	if cmd.Fill != nil {
		fop := &text.DrawOptions{}
		fop.PrimaryAlign = primary
		fop.SecondaryAlign = secondary
		fop.GeoM.Concat(affineGeoM(cmd.Transform))
		scaleColor(&fop.ColorScale, *cmd.Fill, cmd.Opacity)
		text.Draw(target, cmd.Text, face, fop)
	}
}

func (p *Painter) whiteImage() *ebiten.Image {
	if p.white == nil {
		p.white = ebiten.NewImage(1, 1)
		p.white.Fill(color.White)
	}
	return p.white
}

func (p *Painter) textFace() text.Face {
	if p.face == nil {
		p.face = text.NewGoXFace(basicfont.Face7x13)
	}
	return p.face
}

// SetTextFace overrides the face used for text nodes.
func (p *Painter) SetTextFace(face text.Face) {
	p.face = face
}

func (p *Painter) ebitenImage(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if p.imgCache == nil {
		p.imgCache = make(map[image.Image]*ebiten.Image)
	}
	if e, ok := p.imgCache[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	p.imgCache[img] = e
	return e
}

// affineGeoM converts a [6]float64 affine matrix into an ebiten.GeoM.
func affineGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// scaleColor applies a premultiplied color+opacity to a color scale.
func scaleColor(cs *ebiten.ColorScale, c Color, opacity float64) {
	a := float32(c.A * opacity)
	cs.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
}

// nrgba converts a Color (plus opacity) to a color.NRGBA.
func nrgba(c Color, opacity float64) color.NRGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.NRGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A * opacity)}
}
