package assistant

import "strings"

// Intent categories. Declaration order doubles as the tie-break: when two
// categories score the same, the one declared first wins.
const (
	IntentAvailability = "availability"
	IntentSoftware     = "software"
	IntentCapacity     = "capacity"
	IntentLocation     = "location"
	IntentSchedule     = "schedule"
	IntentHelp         = "help"
	IntentContact      = "contact"
	IntentAbout        = "about"
	IntentAnalytics    = "analytics"
	IntentFallback     = "fallback"
)

type intentDef struct {
	name     string
	keywords []string
}

// Keyword vocabularies per intent. Scoring is plain substring matching on
// the lowercased message, so accented and unaccented spellings are both
// listed.
var intents = []intentDef{
	{IntentAvailability, []string{
		"disponível", "disponivel", "livre", "vaga", "vazio", "agora", "now", "aberta", "ocupada", "ocupado",
		"tem sala", "preciso de sala", "sala livre", "sala vaga", "reservar", "usar sala", "acesso", "status",
	}},
	{IntentSoftware, []string{
		"software", "programa", "aplicativo", "aplicação", "ferramenta", "sistema",
		"unity", "unreal", "blender", "visual studio", "git", "docker", "office",
		"ide", "editor", "desenvolvimento", "programação", "programacao", "código", "codigo",
		"game", "jogo", "jogos", "engine", "3d", "modelagem", "animação", "animacao", "computador",
	}},
	{IntentCapacity, []string{
		"capacidade", "quantas pessoas", "quantos alunos", "tamanho", "lugares", "assentos",
		"cabem", "comporta", "máximo", "maximo", "lotação", "lotacao", "turma", "grupo", "pessoal",
	}},
	{IntentLocation, []string{
		"onde", "localização", "localizacao", "bloco", "andar", "fica", "encontrar",
		"endereço", "endereco", "caminho", "direção", "direcao", "mapa", "local", "chegar",
	}},
	{IntentSchedule, []string{
		"horário", "horario", "aula", "curso", "quando", "que horas", "período", "periodo",
		"manhã", "manha", "tarde", "noite", "segunda", "terça", "terca", "quarta",
		"quinta", "sexta", "sábado", "sabado", "domingo", "funcionamento", "aberto", "programação",
	}},
	{IntentHelp, []string{
		"ajuda", "help", "como", "o que", "opções", "opcoes", "menu", "comandos",
		"posso", "consegue", "sabe", "funciona", "usar", "que você faz", "oi", "ola", "olá",
	}},
	{IntentContact, []string{
		"contato", "telefone", "email", "whatsapp", "falar", "secretaria", "administração", "administracao",
	}},
	{IntentAbout, []string{
		"senai", "escola", "instituição", "instituicao", "sobre", "história", "historia", "morvan", "figueiredo",
	}},
	{IntentAnalytics, []string{
		"análise", "analise", "tendência", "tendencia", "estatística", "estatistica",
		"padrão", "padrao", "histórico", "historico", "uso", "ocupação", "ocupacao",
		"relatório", "relatorio", "insights", "dados", "métricas", "metricas", "total", "quantas",
	}},
}

// Classify scores the message against every intent and returns the best
// one with its score. Each keyword found as a substring adds 1; a message
// that, trimmed, equals a keyword exactly adds 2 more. A zero best score
// means no intent matched.
func Classify(message string) (string, int) {
	lower := strings.ToLower(message)
	trimmed := strings.TrimSpace(lower)

	best := ""
	bestScore := 0
	for _, def := range intents {
		score := 0
		for _, kw := range def.keywords {
			if strings.Contains(lower, kw) {
				score++
				if trimmed == kw {
					score += 2
				}
			}
		}
		if score > bestScore {
			best = def.name
			bestScore = score
		}
	}
	return best, bestScore
}
