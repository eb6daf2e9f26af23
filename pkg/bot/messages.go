package bot

import (
	"fmt"
	"strings"

	"github.com/lucasreis/escala-bot/pkg/roster"
)

// User-facing texts, in the wording supervisors and workers already know.
const (
	msgNoPending   = "⚠️ Não há nenhuma escala pendente para confirmação."
	msgConfirmedDM = "✅ Presença confirmada. Obrigado!"
	msgDeclinedDM  = "❌ Escala recusada. O supervisor será avisado."
	msgBotActive   = "🟢 Bot ativo"

	msgRules = `📋 REGRAS DE USO DO SISTEMA DE ESCALAS

1️⃣ Envio da escala:
/escala DATA

2️⃣ Formato por linha:
@pessoa HORÁRIO

Exemplo:
/escala 28/01
@joao 12:00
@ana 13h30

3️⃣ A data pode conter texto livre:
Ex: 28/01 Quarta-feira
Ex: Escala Semana 01/02 a 07/02

4️⃣ Confirmação:
1️⃣ Confirmar presença
2️⃣ Recusar escala

🤖 Sistema automático de escalas.`
)

// displayNumber renders a worker token as the "@number" people see in group
// messages: the numeric portion before the provider suffix, with the country
// prefix 55 stripped. Presentation only; never used for identity comparison.
func displayNumber(worker roster.WorkerID) string {
	number := string(worker)
	if i := strings.Index(number, "@"); i >= 0 {
		number = number[:i]
	}
	return strings.TrimPrefix(number, "55")
}

// assignmentNotice is the private message sent to a worker when they are
// put on a shift.
func assignmentNotice(a roster.ShiftAssignment) string {
	return fmt.Sprintf(`Olá 👋

Você foi escalado para trabalhar:

🏢 Loja: %s
📅 Data: %s
🕒 Horário: %s

🤖 Mensagem automática do sistema.

📌 Responda com:
1️⃣ Confirmar presença
2️⃣ Recusar escala

📢 Confirme para garantir sua vaga!`, a.Location, a.DateLabel, a.TimeLabel)
}

// assignmentAck is the group acknowledgement naming the worker and shift.
func assignmentAck(worker roster.WorkerID, a roster.ShiftAssignment) string {
	return fmt.Sprintf("📨 @%s escalado para %s às %s (%s)",
		displayNumber(worker), a.DateLabel, a.TimeLabel, a.Location)
}

// confirmedBroadcast is the group message announcing a confirmed shift.
func confirmedBroadcast(worker roster.WorkerID, a roster.ShiftAssignment) string {
	return fmt.Sprintf("✅ @%s CONFIRMOU presença\n📅 %s\n🕒 %s\n🏢 %s",
		displayNumber(worker), a.DateLabel, a.TimeLabel, a.Location)
}

// declinedBroadcast is the group message announcing a refused shift.
func declinedBroadcast(worker roster.WorkerID, a roster.ShiftAssignment) string {
	return fmt.Sprintf("❌ @%s RECUSOU a escala\n📅 %s\n🕒 %s\n🏢 %s",
		displayNumber(worker), a.DateLabel, a.TimeLabel, a.Location)
}
