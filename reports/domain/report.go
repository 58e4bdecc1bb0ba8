package reports

import (
	"bytes"
	"text/template"
)

// Person is one recipient of the activity report. The counters are pointers so
// a missing counter fails validation while a zero is accepted.
type Person struct {
	Name           string `json:"nombre" validate:"required"`
	Appearances    *int   `json:"apariciones" validate:"required,gte=0"`
	MinutesTalking *int   `json:"tiempo_hablando_minutos" validate:"required,gte=0"`
	SalaryUSD      string `json:"salario_usd"`
	Email          string `json:"correo" validate:"required"`
	UnionMember    string `json:"tiene_sindicato"`
}

type Payload struct {
	People []Person `json:"personas" validate:"required,dive"`
}

const ActivityReportTplMsg = `
Hola {{.Name}},

Aquí tienes tu resumen:

- Apariciones: {{.Appearances}}
- Tiempo hablando (minutos): {{.MinutesTalking}}
- Salario USD: {{.SalaryUSD}}
- Afiliado a sindicato: {{.UnionMember}}

Saludos.
`

// Count returns a counter value for a Person literal.
func Count(n int) *int {
	return &n
}

var ActivityReportTpl = template.Must(template.New("ActivityReportTpl").Parse(ActivityReportTplMsg))

func (p Person) Subject() string {
	return "Reporte de actividad – " + p.Name
}

type activityReport struct {
	Name           string
	Appearances    int
	MinutesTalking int
	SalaryUSD      string
	UnionMember    string
}

func count(n *int) int {
	if n == nil {
		return 0
	}

	return *n
}

func (p Person) Body() (string, error) {
	view := activityReport{
		Name:           p.Name,
		Appearances:    count(p.Appearances),
		MinutesTalking: count(p.MinutesTalking),
		SalaryUSD:      p.SalaryUSD,
		UnionMember:    p.UnionMember,
	}

	var buf bytes.Buffer
	if err := ActivityReportTpl.Execute(&buf, view); err != nil {
		return "", err
	}

	return buf.String(), nil
}
