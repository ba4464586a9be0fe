package retained

import (
	"fmt"
	"strings"

	"github.com/agiangrant/immersive/theme"
)

// StatusOverlayID is the overlay ID of status messages.
const StatusOverlayID = "OVERLAY_STATUS"

// ButtonMask selects the buttons of a message box.
type ButtonMask uint8

const (
	ButtonOK ButtonMask = 1 << iota
	ButtonCancel
	ButtonNext
	ButtonBack
	ButtonMinMax
	ButtonHome

	// ButtonAll is every valid button.
	ButtonAll = ButtonOK | ButtonCancel | ButtonNext | ButtonBack | ButtonMinMax | ButtonHome
)

var buttonLabels = [...]string{"OK", "Cancel", "Next", "Back", "Min/Max", "Home"}

func (m ButtonMask) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for i, label := range buttonLabels {
		if m&(1<<i) != 0 {
			parts = append(parts, label)
		}
	}
	if m&^ButtonAll != 0 {
		parts = append(parts, fmt.Sprintf("0x%02X", uint8(m&^ButtonAll)))
	}
	return strings.Join(parts, "|")
}

// MessageBox is a panel with centered text and an optional row of
// selectable buttons.
type MessageBox struct {
	*Panel
	text    *Text
	buttons map[ButtonMask]*Panel
}

// NewMessageBox builds a message box. Buttons outside ButtonAll are
// rejected.
func (t *Tree) NewMessageBox(message string, buttons ButtonMask, th *theme.Theme) (*MessageBox, error) {
	if buttons&^ButtonAll != 0 {
		return nil, fmt.Errorf("message box %q with buttons %v: %w", message, buttons, ErrInvalidButtonMask)
	}
	if th == nil {
		th = theme.Dark()
	}
	pad := th.BorderSize
	m := &MessageBox{Panel: &Panel{}, buttons: make(map[ButtonMask]*Panel)}
	t.initPanel(m.Panel, m, Config{
		Padding: Uniform(pad),
		Theme:   th,
		Layout:  &VBox{VAlign: AlignCenter, HAlign: AlignCenter},
	})
	m.text = t.NewText(TextConfig{Config: Config{Theme: th}, Text: message})
	m.addChild(m.text)

	if buttons == 0 {
		return m, nil
	}
	row := t.NewGroup(Config{
		Theme:    th,
		SizeMode: [2]SizeMode{SizePercentParent, SizeTheme},
		SizeRef:  [2]SizeRef{RefScale(1), RefTheme(theme.KeyStdButtonSize)},
		Layout:   &HBox{HAlign: AlignJustify, VAlign: AlignCenter},
	})
	for i, label := range buttonLabels {
		mask := ButtonMask(1 << i)
		if buttons&mask == 0 {
			continue
		}
		b := t.NewPanel(Config{
			Theme:    th,
			Padding:  Uniform(pad),
			SizeMode: [2]SizeMode{SizeTheme, SizeTheme},
			SizeRef:  [2]SizeRef{RefTheme(theme.KeyStdButtonSize), RefTheme(theme.KeyStdButtonSize)},
			Layout:   &Overlapping{HAlign: AlignCenter, VAlign: AlignCenter},
		})
		b.SetSelectable(true)
		b.addChild(t.NewText(TextConfig{Config: Config{Theme: th}, Text: label}))
		row.addChild(b)
		m.buttons[mask] = b
	}
	m.addChild(row)
	return m, nil
}

// addChild attaches c without refreshing the whole tree; construction
// code refreshes once at the end.
func (n *Node) addChild(c Widget) {
	if err := c.AsNode().attachTo(n, -1, false); err != nil {
		n.logger().Warn("child not attached", "node", n.id, "err", err)
		return
	}
	cn := c.AsNode()
	cn.updateSize(n.InteriorSize())
	n.RefreshLayout(false)
}

// Message returns the text widget.
func (m *MessageBox) Message() *Text { return m.text }

// Button returns the panel of a single button, or nil when the box has
// no such button.
func (m *MessageBox) Button(b ButtonMask) *Panel { return m.buttons[b] }

// ShowStatus replaces any status overlay with a message box showing
// message and no buttons.
func (n *Node) ShowStatus(message string) *MessageBox {
	n.mustLive("ShowStatus")
	n.ClearStatus()
	m, _ := n.tree.NewMessageBox(message, 0, n.theme)
	// a fresh box owns nothing, so it cannot close a cycle
	_ = n.ShowOverlay(StatusOverlayID, m)
	return m
}

// ClearStatus removes the status overlay.
func (n *Node) ClearStatus() {
	n.mustLive("ClearStatus")
	n.RemoveOverlay(StatusOverlayID)
}

// ShowMessage shows a message box as an overlay keyed by its message.
// Callers hook the buttons with OnRelease and remove the overlay with
// RemoveOverlay(message).
func (n *Node) ShowMessage(message string, buttons ButtonMask) (*MessageBox, error) {
	n.mustLive("ShowMessage")
	m, err := n.tree.NewMessageBox(message, buttons, n.theme)
	if err != nil {
		return nil, err
	}
	if err := n.ShowOverlay(message, m); err != nil {
		return nil, err
	}
	return m, nil
}
