package sinistro

// Estados operacionais do sinistro. CONCLUIDO e NEGADO encerram o fluxo;
// NEGADO é alcançável de qualquer estado não terminal.
const (
	StatusAberto    = "ABERTO"
	StatusAnalise   = "ANALISE"
	StatusVistoria  = "VISTORIA"
	StatusReparo    = "REPARO"
	StatusConcluido = "CONCLUIDO"
	StatusNegado    = "NEGADO"
)

var statusValidos = map[string]bool{
	StatusAberto:    true,
	StatusAnalise:   true,
	StatusVistoria:  true,
	StatusReparo:    true,
	StatusConcluido: true,
	StatusNegado:    true,
}

func StatusValido(s string) bool {
	return statusValidos[s]
}

// EhTerminal indica se o status encerra o sinistro.
func EhTerminal(s string) bool {
	return s == StatusConcluido || s == StatusNegado
}

// mesesCurtos segue a abreviação pt-BR usada nos gráficos do dashboard.
var mesesCurtos = [12]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// Estatisticas agrega a carteira de sinistros. Labels/Data formam o
// histograma por mês de aviso, na ordem em que cada mês aparece na
// varredura (não ordenado cronologicamente).
type Estatisticas struct {
	Total      int64    `json:"total"`
	Abertos    int64    `json:"abertos"`
	Concluidos int64    `json:"concluidos"`
	Labels     []string `json:"labels"`
	Data       []int    `json:"data"`
}

// CalcularEstatisticas deriva os contadores e o histograma mensal a
// partir da lista completa de sinistros.
func CalcularEstatisticas(sinistros []Sinistro) Estatisticas {
	stats := Estatisticas{
		Total:  int64(len(sinistros)),
		Labels: []string{},
		Data:   []int{},
	}

	indice := map[string]int{}
	for _, s := range sinistros {
		if !EhTerminal(s.Status) {
			stats.Abertos++
		}
		if s.Status == StatusConcluido {
			stats.Concluidos++
		}

		mes := mesesCurtos[s.DataAviso.Month()-1]
		pos, visto := indice[mes]
		if !visto {
			indice[mes] = len(stats.Labels)
			stats.Labels = append(stats.Labels, mes)
			stats.Data = append(stats.Data, 1)
			continue
		}
		stats.Data[pos]++
	}
	return stats
}
