package http

import (
	"bytes"
	"html/template"

	"golang.org/x/text/language"

	"pickup/internal/core/domain/model/pickup"
)

const executePath = "/pickup/confirm/execute"

var confirmPage = template.Must(template.New("confirm").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}" dir="{{.Dir}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body style="font-family:sans-serif;text-align:center;padding:50px;">
{{- if .OrderName}}
<p>{{.OrderName}}</p>
{{- end}}
<h2>{{.Question}}</h2>
<button id="confirmBtn" style="padding:10px 20px;font-size:16px;">{{.Button}}</button>
<div id="status" style="margin-top:20px;font-weight:bold;"></div>
<script>
const btn = document.getElementById("confirmBtn");
const status = document.getElementById("status");
btn.addEventListener("click", async () => {
  btn.disabled = true;
  status.textContent = {{.Processing}};
  try {
    const res = await fetch({{.Action}}, {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ order_id: {{.OrderID}}, token: {{.Token}} })
    });
    status.innerHTML = await res.text();
    if (res.status >= 500 || res.status === 409) btn.disabled = false;
  } catch (err) {
    status.textContent = {{.Failed}};
    btn.disabled = false;
  }
});
</script>
</body>
</html>
`))

const fragmentTemplate = `{{define "fragment"}}<h2 data-status="{{.Status}}">{{if .Success}}✅{{else}}❌{{end}} {{.Message}}</h2>{{end}}`

var messagePage = template.Must(template.Must(template.New("message").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}" dir="{{.Dir}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body style="font-family:sans-serif;text-align:center;padding:50px;">
{{template "fragment" .Fragment}}
</body>
</html>
`)).Parse(fragmentTemplate))

var fragmentOnly = template.Must(template.New("fragment-only").Parse(fragmentTemplate))

type confirmPageData struct {
	Lang, Dir  string
	Title      string
	OrderName  string
	Question   string
	Button     string
	Processing string
	Failed     string
	Action     string
	OrderID    string
	Token      string
}

type fragmentData struct {
	Status  string
	Success bool
	Message string
}

type messagePageData struct {
	Lang, Dir string
	Title     string
	Fragment  fragmentData
}

func (l *Localizer) renderConfirmPage(tag language.Tag, orderID, token, orderName string) ([]byte, error) {
	p := l.Printer(tag)
	data := confirmPageData{
		Lang:       tag.String(),
		Dir:        direction(tag),
		Title:      p.Sprintf(keyPageTitle),
		Question:   p.Sprintf(keyPageQuestion),
		Button:     p.Sprintf(keyPageButton),
		Processing: p.Sprintf(keyPageProcessing),
		Failed:     p.Sprintf(keyPageFailed),
		Action:     executePath,
		OrderID:    orderID,
		Token:      token,
	}
	if orderName != "" {
		data.OrderName = p.Sprintf(keyPageOrder, orderName)
	}

	var buf bytes.Buffer
	if err := confirmPage.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (l *Localizer) renderMessagePage(tag language.Tag, status pickup.Status) ([]byte, error) {
	var buf bytes.Buffer
	err := messagePage.Execute(&buf, messagePageData{
		Lang:     tag.String(),
		Dir:      direction(tag),
		Title:    l.Printer(tag).Sprintf(keyPageTitle),
		Fragment: l.fragmentData(tag, status),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (l *Localizer) renderFragment(tag language.Tag, status pickup.Status) ([]byte, error) {
	var buf bytes.Buffer
	if err := fragmentOnly.ExecuteTemplate(&buf, "fragment", l.fragmentData(tag, status)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (l *Localizer) fragmentData(tag language.Tag, status pickup.Status) fragmentData {
	return fragmentData{
		Status:  status.String(),
		Success: isSuccess(status),
		Message: l.StatusMessage(tag, status),
	}
}
