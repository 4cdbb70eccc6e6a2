package assistant

import (
	"fmt"
	"strings"

	"github.com/clientedev/salasv2/models"
	"github.com/clientedev/salasv2/scheduling"
)

// Reply is what the assistant hands back for any message. Response is
// always non-empty: classification problems degrade to a helpful text,
// never to an error.
type Reply struct {
	Intent   string `json:"intent"`
	Response string `json:"response"`
}

// Assistant answers free-text questions about rooms and schedules.
type Assistant struct {
	Resolver *scheduling.Resolver
	Clock    scheduling.Clock
}

func New(resolver *scheduling.Resolver, clock scheduling.Clock) *Assistant {
	return &Assistant{Resolver: resolver, Clock: clock}
}

// Respond classifies the message and builds the matching answer from the
// given room and schedule snapshots.
func (a *Assistant) Respond(message string, rooms []models.Classroom, schedules []models.Schedule) Reply {
	if strings.TrimSpace(message) == "" {
		return Reply{Intent: IntentHelp, Response: helpResponse()}
	}
	if len(rooms) == 0 {
		return Reply{
			Intent:   IntentFallback,
			Response: "🏫 Parece que ainda não temos salas cadastradas. Entre em contato com a secretaria para mais informações!",
		}
	}

	intent, score := Classify(message)
	if score == 0 {
		return a.fallback(message, rooms)
	}

	switch intent {
	case IntentAvailability:
		return Reply{Intent: intent, Response: a.availabilityResponse(rooms)}
	case IntentSoftware:
		return Reply{Intent: intent, Response: softwareResponse(message, rooms)}
	case IntentCapacity:
		return Reply{Intent: intent, Response: capacityResponse(rooms)}
	case IntentLocation:
		return Reply{Intent: intent, Response: locationResponse(rooms)}
	case IntentSchedule:
		return Reply{Intent: intent, Response: scheduleResponse(rooms, schedules)}
	case IntentContact:
		return Reply{Intent: intent, Response: contactResponse()}
	case IntentAbout:
		return Reply{Intent: intent, Response: aboutResponse()}
	case IntentAnalytics:
		return Reply{Intent: intent, Response: a.analyticsResponse(rooms, schedules)}
	default:
		return Reply{Intent: IntentHelp, Response: helpResponse()}
	}
}

// fallback never gives up: it tries a room-name mention, then greeting
// phrasing, then a generic "didn't understand" with examples.
func (a *Assistant) fallback(message string, rooms []models.Classroom) Reply {
	lower := strings.ToLower(message)

	for _, room := range rooms {
		name := strings.ToLower(strings.TrimSpace(room.Name))
		if name != "" && strings.Contains(lower, name) {
			return Reply{Intent: IntentFallback, Response: roomSummary(room)}
		}
	}

	greetings := []string{"bom dia", "boa tarde", "boa noite", "e aí", "eai", "hey", "hello", "não entendi", "nao entendi", "hein", "?"}
	for _, g := range greetings {
		if strings.Contains(lower, g) {
			return Reply{
				Intent:   IntentFallback,
				Response: timeGreeting(a.Clock.Now().Hour()) + " Sou o assistente virtual das salas. Me pergunte algo como \"que salas estão livres agora?\" ou \"onde fica a sala X?\" 😊",
			}
		}
	}

	now := a.Clock.Now()
	return Reply{
		Intent: IntentFallback,
		Response: fmt.Sprintf(`🤖 Hmm, não entendi muito bem: "%s"

🏫 Informações rápidas:
• %d salas cadastradas
• Horário atual: %s
• Funcionamento: Segunda a Sábado (7h30-22h30)

💬 Tente perguntar, por exemplo:
• "Que salas estão livres agora?"
• "Preciso de uma sala para 25 pessoas"
• "Onde fica a sala de jogos?"
• "Que software tem disponível?"`, message, len(rooms), now.Format("15:04")),
	}
}

// timeGreeting returns a contextual greeting for the local hour.
func timeGreeting(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "Bom dia! ☀️"
	case hour >= 12 && hour < 18:
		return "Boa tarde! 🌤️"
	case hour >= 18 && hour < 22:
		return "Boa noite! 🌆"
	default:
		return "Oi! 🌙"
	}
}

func roomSummary(room models.Classroom) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏫 **%s**\n", room.Name)
	fmt.Fprintf(&b, "• Capacidade: %d pessoas\n", room.Capacity)
	if room.Block != "" {
		fmt.Fprintf(&b, "• Localização: %s\n", room.Block)
	}
	if room.HasComputers {
		b.WriteString("• Equipada com computadores 💻\n")
	}
	if room.Software != "" {
		fmt.Fprintf(&b, "• Software: %s\n", room.Software)
	}
	if room.Description != "" {
		fmt.Fprintf(&b, "• %s\n", room.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
