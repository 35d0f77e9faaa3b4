package service

import (
	"fmt"
	"net/url"
)

const (
	TemplateWelcome = "welcome"
	TemplateGaming  = "gaming"
)

// The registration flows this service exercises are Swedish-language, so
// the templates are too.
const welcomeTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="text-align: center;">Bekräfta ditt konto</h1>
  <h2>Välkommen!</h2>
  <p>Din registrering är nästan klar. För att aktivera ditt konto, använd verifieringskoden nedan:</p>
  <div style="text-align: center; margin: 30px 0;">
    <div style="font-size: 32px; font-weight: bold; letter-spacing: 3px;">%s</div>
  </div>
  <p style="text-align: center;">Eller klicka på länken nedan för automatisk verifiering:</p>
  <div style="text-align: center; margin: 20px 0;">
    <a href="%s">Bekräfta konto automatiskt</a>
  </div>
  <p style="color: #999; font-size: 12px;">
    Denna kod är giltig i 10 minuter. Om du inte har begärt denna verifiering, ignorera detta meddelande.
  </p>
</div>`

const gamingTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="text-align: center;">Kontoverifiering</h1>
  <h2>Säkra din spelupplevelse</h2>
  <p>För att slutföra din registrering och börja spela säkert, bekräfta ditt konto med koden nedan:</p>
  <div style="text-align: center; margin: 30px 0;">
    <div style="font-size: 32px; font-weight: bold; letter-spacing: 3px;">%s</div>
  </div>
  <p style="text-align: center;">Alternativt, klicka här för snabb verifiering:</p>
  <div style="text-align: center; margin: 20px 0;">
    <a href="%s">Snabbverifiering</a>
  </div>
  <p style="color: #999; font-size: 12px;">
    Verifieringskod giltig i 15 minuter. Kontakta support om du upplever problem med verifieringen.
  </p>
</div>`

// renderTemplate returns the subject and HTML body for a named template,
// falling back to the welcome template for unknown names.
func renderTemplate(name, code, email string) (subject, html string) {
	link := fmt.Sprintf("https://verify-account.example.com/confirm?code=%s&email=%s",
		code, url.QueryEscape(email))
	switch name {
	case TemplateGaming:
		return "Verifiera ditt spelkonto - Säker inloggning", fmt.Sprintf(gamingTemplate, code, link)
	default:
		return "Bekräfta din registrering", fmt.Sprintf(welcomeTemplate, code, link)
	}
}
