package assistant

import (
	"fmt"
	"sort"
	"strings"

	"github.com/clientedev/salasv2/models"
	"github.com/clientedev/salasv2/scheduling"
)

// availabilityResponse answers "what is free right now" through the real
// resolver. A store failure degrades to an apology instead of an error.
func (a *Assistant) availabilityResponse(rooms []models.Classroom) string {
	now := a.Clock.Now()
	result, err := a.Resolver.ForDate(now, "")
	if err != nil {
		return "😕 Não consegui consultar a disponibilidade agora. Tente de novo em instantes ou procure a secretaria."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⚡ **Disponibilidade em tempo real** (%s)\n\n", result.PeriodDescription)
	if len(result.AvailableRooms) == 0 {
		b.WriteString("Nenhuma sala livre neste momento. 😔\n")
	} else {
		fmt.Fprintf(&b, "✅ %d de %d salas livres:\n", len(result.AvailableRooms), result.TotalRooms)
		for _, room := range result.AvailableRooms {
			fmt.Fprintf(&b, "• %s (%d pessoas", room.Name, room.Capacity)
			if room.HasComputers {
				b.WriteString(", com computadores")
			}
			b.WriteString(")\n")
		}
	}
	if len(result.OccupiedRooms) > 0 {
		fmt.Fprintf(&b, "\n🔒 Ocupadas agora: %d\n", len(result.OccupiedRooms))
	}
	return strings.TrimRight(b.String(), "\n")
}

// softwareCatalog groups the search vocabulary by software family, so a
// question about "jogos" finds the rooms whose software list mentions an
// engine.
var softwareCatalog = map[string][]string{
	"desenvolvimento de jogos": {"unity", "unreal", "engine", "game", "jogo", "jogos"},
	"modelagem 3d":             {"blender", "3d", "modelagem", "maya", "animação", "animacao"},
	"programação":              {"visual studio", "vscode", "ide", "git", "docker", "programação", "programacao", "código", "codigo", "desenvolvimento"},
	"escritório":               {"office", "word", "excel", "powerpoint"},
}

func softwareResponse(message string, rooms []models.Classroom) string {
	lower := strings.ToLower(message)

	wanted := make([]string, 0, len(softwareCatalog))
	for family, words := range softwareCatalog {
		for _, w := range words {
			if strings.Contains(lower, w) {
				wanted = append(wanted, family)
				break
			}
		}
	}
	sort.Strings(wanted)

	matches := func(room models.Classroom) bool {
		if len(wanted) == 0 {
			return room.Software != ""
		}
		softwareLower := strings.ToLower(room.Software)
		for _, family := range wanted {
			for _, w := range softwareCatalog[family] {
				if strings.Contains(softwareLower, w) {
					return true
				}
			}
		}
		return false
	}

	var b strings.Builder
	if len(wanted) > 0 {
		fmt.Fprintf(&b, "🛠️ Salas com software de %s:\n\n", strings.Join(wanted, ", "))
	} else {
		b.WriteString("🛠️ Salas com software instalado:\n\n")
	}

	found := 0
	for _, room := range rooms {
		if matches(room) {
			found++
			fmt.Fprintf(&b, "• **%s** (%s): %s\n", room.Name, room.Block, room.Software)
		}
	}
	if found == 0 {
		return "😕 Não encontrei salas com esse software. Pergunte \"que software tem disponível?\" para ver tudo que temos."
	}
	return strings.TrimRight(b.String(), "\n")
}

func capacityResponse(rooms []models.Classroom) string {
	sorted := make([]models.Classroom, len(rooms))
	copy(sorted, rooms)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Capacity > sorted[j].Capacity })

	var b strings.Builder
	b.WriteString("👥 Capacidade das salas (maior primeiro):\n\n")
	for _, room := range sorted {
		fmt.Fprintf(&b, "• %s: %d pessoas", room.Name, room.Capacity)
		if room.HasComputers {
			b.WriteString(" 💻")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func locationResponse(rooms []models.Classroom) string {
	byBlock := map[string][]string{}
	blocks := []string{}
	for _, room := range rooms {
		block := room.Block
		if block == "" {
			block = "Sem bloco definido"
		}
		if _, ok := byBlock[block]; !ok {
			blocks = append(blocks, block)
		}
		byBlock[block] = append(byBlock[block], room.Name)
	}
	sort.Strings(blocks)

	var b strings.Builder
	b.WriteString("📍 Localização das salas:\n\n")
	for _, block := range blocks {
		fmt.Fprintf(&b, "**%s**: %s\n", block, strings.Join(byBlock[block], ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func scheduleResponse(rooms []models.Classroom, schedules []models.Schedule) string {
	roomName := map[uint]string{}
	for _, room := range rooms {
		roomName[room.ID] = room.Name
	}

	var b strings.Builder
	b.WriteString("🕐 **Horários de funcionamento:**\n")
	b.WriteString("• Manhã: 7h30 - 12h00\n")
	b.WriteString("• Tarde: 13h00 - 18h00\n")
	b.WriteString("• Noite: 18h30 - 22h30\n")
	b.WriteString("• Integral: 8h00 - 17h00\n")
	b.WriteString("• Domingo: fechado\n")

	active := 0
	for _, s := range schedules {
		if s.IsActive {
			active++
		}
	}
	if active > 0 {
		fmt.Fprintf(&b, "\n📚 Temos %d horários de aula cadastrados. Alguns exemplos:\n", active)
		shown := 0
		for _, s := range schedules {
			if !s.IsActive || s.CourseName == "" {
				continue
			}
			fmt.Fprintf(&b, "• %s — %s, %s (%s)\n",
				s.CourseName, models.WeekdayName(s.DayOfWeek), models.ShiftName(s.Shift), roomName[s.ClassroomID])
			shown++
			if shown == 5 {
				break
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func contactResponse() string {
	return `📞 **Contato com a secretaria:**
• Presencial: secretaria do SENAI Morvan Figueiredo
• Horário de atendimento: Segunda a Sexta, 8h00 - 20h00
• Para reservas de sala, use o botão "Solicitar horário" na página da sala.`
}

func aboutResponse() string {
	return `🏫 **SENAI Morvan Figueiredo**

Escola de educação profissional com laboratórios de informática, desenvolvimento de jogos e salas de aula convencionais. Este assistente consulta em tempo real o cadastro de salas, horários e ocupação da unidade.`
}

func (a *Assistant) analyticsResponse(rooms []models.Classroom, schedules []models.Schedule) string {
	shiftCount := map[string]int{}
	active := 0
	for _, s := range schedules {
		if !s.IsActive {
			continue
		}
		active++
		shiftCount[s.Shift]++
	}

	totalCapacity := 0
	withComputers := 0
	for _, room := range rooms {
		totalCapacity += room.Capacity
		if room.HasComputers {
			withComputers++
		}
	}

	var b strings.Builder
	b.WriteString("📊 **Números da unidade:**\n\n")
	fmt.Fprintf(&b, "• Salas: %d (%d com computadores)\n", len(rooms), withComputers)
	fmt.Fprintf(&b, "• Capacidade total: %d pessoas\n", totalCapacity)
	fmt.Fprintf(&b, "• Horários ativos: %d\n", active)
	if active > 0 {
		b.WriteString("\n**Ocupação por turno:**\n")
		for _, shift := range models.AllShifts {
			if n := shiftCount[shift]; n > 0 {
				fmt.Fprintf(&b, "• %s: %d horários\n", models.ShiftName(shift), n)
			}
		}
	}
	now := a.Clock.Now()
	fmt.Fprintf(&b, "\nConsulta feita %s às %s.", models.WeekdayName(scheduling.DayOfWeek(now)), now.Format("15:04"))
	return b.String()
}

func helpResponse() string {
	return `🤖 **Oi! Sou o assistente virtual das salas! 😊**

Converso em linguagem natural - não precisa de comandos. Exemplos:

**🏢 Sobre as salas:**
• "Preciso de uma sala para 25 pessoas com computadores"
• "Onde fica a Sala DEV?"

**⚡ Disponibilidade:**
• "Que salas estão livres agora?"
• "A sala de jogos está ocupada?"

**🛠️ Software:**
• "Onde tem Unity para desenvolvimento de jogos?"
• "Sala com Visual Studio"

**📊 Informações gerais:**
• "Horários de funcionamento"
• "Telefone da secretaria"

Se eu não entender, tente perguntar de outro jeito! 🧠✨`
}
