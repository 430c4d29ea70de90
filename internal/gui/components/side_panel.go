package components

import (
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	ValueMin  = 0.0
	ValueMax  = 10.0
	ValueStep = 0.1

	DefaultValue = 2.7

	poweredByURL = "https://fyne.io"
)

type SidePanel struct {
	container       *fyne.Container
	labelEntry      *widget.Entry
	valueSlider     *widget.Slider
	valueLabel      *widget.Label
	incrementButton *widget.Button
	value           float64

	onLabelChange func(string)
	onValueChange func(float64)
}

func NewSidePanel(label string, value float64) *SidePanel {
	panel := &SidePanel{}
	panel.setupPanel(label, value)
	return panel
}

func (sp *SidePanel) setupPanel(label string, value float64) {
	heading := widget.NewLabelWithStyle("Side Panel", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	sp.labelEntry = widget.NewEntry()
	sp.labelEntry.SetText(label)
	sp.labelEntry.OnChanged = sp.onLabelChanged
	labelRow := container.NewBorder(nil, nil, widget.NewLabel("Write something:"), nil, sp.labelEntry)

	sp.valueLabel = widget.NewLabel("")
	sp.valueSlider = widget.NewSlider(ValueMin, ValueMax)
	sp.valueSlider.Step = ValueStep
	sp.valueSlider.SetValue(value)
	sp.value = sp.valueSlider.Value
	sp.valueLabel.SetText(formatValue(sp.value))
	sp.valueSlider.OnChanged = sp.applyValue

	sp.incrementButton = widget.NewButton("Increment", sp.onIncrement)

	poweredBy := container.NewHBox(widget.NewLabel("powered by"))
	if link, err := url.Parse(poweredByURL); err == nil {
		poweredBy.Add(widget.NewHyperlink("fyne", link))
	}

	controls := container.NewVBox(
		heading,
		labelRow,
		widget.NewSeparator(),
		sp.valueSlider,
		sp.valueLabel,
		sp.incrementButton,
	)

	sp.container = container.NewBorder(controls, poweredBy, nil, nil)
}

func (sp *SidePanel) GetContainer() *fyne.Container {
	return sp.container
}

func (sp *SidePanel) SetLabelChangeHandler(handler func(string)) {
	sp.onLabelChange = handler
}

func (sp *SidePanel) SetValueChangeHandler(handler func(float64)) {
	sp.onValueChange = handler
}

func (sp *SidePanel) Label() string {
	return sp.labelEntry.Text
}

func (sp *SidePanel) SetLabel(label string) {
	sp.labelEntry.SetText(label)
}

func (sp *SidePanel) Value() float64 {
	return sp.value
}

func (sp *SidePanel) SetValue(value float64) {
	sp.valueSlider.SetValue(value)
	sp.applyValue(sp.valueSlider.Value)
}

func (sp *SidePanel) onLabelChanged(text string) {
	if sp.onLabelChange != nil {
		sp.onLabelChange(text)
	}
}

// onIncrement adds one; the slider clamps the result to its range.
func (sp *SidePanel) onIncrement() {
	sp.SetValue(sp.value + 1)
}

// applyValue may run twice for one change, via the slider callback and SetValue.
func (sp *SidePanel) applyValue(value float64) {
	if value == sp.value {
		return
	}
	sp.value = value
	sp.valueLabel.SetText(formatValue(value))
	if sp.onValueChange != nil {
		sp.onValueChange(value)
	}
}

func formatValue(value float64) string {
	return fmt.Sprintf("value: %.1f", value)
}
