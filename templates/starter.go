package templates

import (
	"github.com/aether-xyz/go-aether/model"
	"github.com/aether-xyz/go-aether/widget"
)

// EmptyTemplate is a bare vertical layout.
type EmptyTemplate struct{}

func (t *EmptyTemplate) Name() string        { return "empty" }
func (t *EmptyTemplate) Description() string { return "Empty project with a vertical root layout" }

func (t *EmptyTemplate) Build() (*model.Document, error) {
	return model.NewDocument(model.NewNode(widget.NewVBox()))
}

// CounterTemplate is a label/button pair wired to an integer variable.
type CounterTemplate struct{}

func (t *CounterTemplate) Name() string { return "counter" }

func (t *CounterTemplate) Description() string {
	return "Counter app: bound label plus a button incrementing an integer variable"
}

func (t *CounterTemplate) Build() (*model.Document, error) {
	root := model.NewNode(widget.NewVBox())

	title := model.NewNode(&widget.Label{Text: "Counter App"})

	count := model.NewNode(&widget.Label{Text: "Count: 0"})
	count.Bind("text", "counter")

	increment := model.NewNode(&widget.Button{Text: "Increment"})
	increment.SetAction(model.EventClicked, model.Action{
		Type:     model.ActionIncrement,
		Variable: "counter",
	})

	root.Children = []*model.Node{title, count, increment}

	doc, err := model.NewDocument(root)
	if err != nil {
		return nil, err
	}
	doc.Name = "Counter App"
	if err := doc.Variables.Set(model.Variable{Name: "counter", Type: model.IntegerType, Default: "0"}); err != nil {
		return nil, err
	}
	return doc, nil
}

// FormTemplate is a contact form with two bound text fields.
type FormTemplate struct{}

func (t *FormTemplate) Name() string { return "form" }

func (t *FormTemplate) Description() string {
	return "Contact form: labelled entries bound to string variables plus a submit button"
}

func (t *FormTemplate) Build() (*model.Document, error) {
	root := model.NewNode(widget.NewVBox())

	nameField := model.NewNode(&widget.Entry{})
	nameField.Bind("value", "name")

	emailField := model.NewNode(&widget.Entry{})
	emailField.Bind("value", "email")

	root.Children = []*model.Node{
		model.NewNode(&widget.Label{Text: "Contact Form"}),
		model.NewNode(&widget.Label{Text: "Name:"}),
		nameField,
		model.NewNode(&widget.Label{Text: "Email:"}),
		emailField,
		model.NewNode(&widget.Button{Text: "Submit"}),
	}

	doc, err := model.NewDocument(root)
	if err != nil {
		return nil, err
	}
	doc.Name = "Contact Form"
	for _, v := range []model.Variable{
		{Name: "name", Type: model.StringType, Default: ""},
		{Name: "email", Type: model.StringType, Default: ""},
	} {
		if err := doc.Variables.Set(v); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// DashboardTemplate is two metric rows with bound progress bars.
type DashboardTemplate struct{}

func (t *DashboardTemplate) Name() string { return "dashboard" }

func (t *DashboardTemplate) Description() string {
	return "Dashboard: metric rows with progress bars bound to float variables"
}

func (t *DashboardTemplate) Build() (*model.Document, error) {
	root := model.NewNode(widget.NewVBox())

	cpuRow := model.NewNode(widget.NewHBox())
	cpuBar := model.NewNode(&widget.Progress{Value: 0.45})
	cpuBar.Bind("value", "cpu_usage")
	cpuRow.Children = []*model.Node{
		model.NewNode(&widget.Label{Text: "CPU Usage:"}),
		cpuBar,
	}

	memRow := model.NewNode(widget.NewHBox())
	memBar := model.NewNode(&widget.Progress{Value: 0.60})
	memBar.Bind("value", "memory_usage")
	memRow.Children = []*model.Node{
		model.NewNode(&widget.Label{Text: "Memory Usage:"}),
		memBar,
	}

	root.Children = []*model.Node{
		model.NewNode(&widget.Label{Text: "Dashboard"}),
		cpuRow,
		memRow,
	}

	doc, err := model.NewDocument(root)
	if err != nil {
		return nil, err
	}
	doc.Name = "Dashboard"
	for _, v := range []model.Variable{
		{Name: "cpu_usage", Type: model.FloatType, Default: "0.45"},
		{Name: "memory_usage", Type: model.FloatType, Default: "0.60"},
	} {
		if err := doc.Variables.Set(v); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
