package notify

import (
	"html/template"
	"strconv"
)

// formatVND renders an amount with thousands separators, e.g. 1500000 ->
// "1,500,000".
func formatVND(amount int64) string {
	s := strconv.FormatInt(amount, 10)

	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}

		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}

	return string(out)
}

var funcs = template.FuncMap{"vnd": formatVND}

var challengeTemplate = template.Must(template.New("challenge").Funcs(funcs).Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <h2>Payment verification code</h2>
  <p>Hello <strong>{{.Name}}</strong>,</p>
  <p>You are paying a tuition bill. Enter this code to confirm the payment:</p>
  <p style="font-size: 32px; letter-spacing: 8px; font-weight: bold; text-align: center;
            background: #3498db; color: #fff; padding: 16px; border-radius: 8px;">{{.Code}}</p>
  <table>
    <tr><td>Semester</td><td><strong>{{.Semester}}</strong></td></tr>
    <tr><td>Academic year</td><td><strong>{{.AcademicYear}}</strong></td></tr>
    <tr><td>Amount</td><td><strong>{{vnd .Amount}} VND</strong></td></tr>
  </table>
  <p>The code is valid for <strong>{{.ExpiresInMinutes}} minutes</strong>. Do not share it with anyone.</p>
  <p style="color: #7f8c8d; font-size: 12px;">If you did not request this code, ignore this email.</p>
</body>
</html>`))

var receiptTemplate = template.Must(template.New("receipt").Funcs(funcs).Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <h2>Payment receipt</h2>
  <p>Hello <strong>{{.Name}}</strong>,</p>
  <p>Your tuition payment went through.</p>
  <table>
    <tr><td>Reference</td><td><strong>{{.ReceiptRef}}</strong></td></tr>
    <tr><td>Semester</td><td><strong>{{.Semester}}</strong></td></tr>
    <tr><td>Academic year</td><td><strong>{{.AcademicYear}}</strong></td></tr>
    <tr><td>Amount</td><td><strong>{{vnd .Amount}} VND</strong></td></tr>
    <tr><td>New balance</td><td><strong>{{vnd .NewBalance}} VND</strong></td></tr>
    <tr><td>Paid at</td><td><strong>{{.PaidAt}}</strong></td></tr>
  </table>
  <p style="color: #7f8c8d; font-size: 12px;">This is an automated email; replies are not read.</p>
</body>
</html>`))

type challengeData struct {
	Name             string
	Code             string
	Semester         int
	AcademicYear     string
	Amount           int64
	ExpiresInMinutes int
}

type receiptData struct {
	Name         string
	ReceiptRef   string
	Semester     int
	AcademicYear string
	Amount       int64
	NewBalance   int64
	PaidAt       string
}
