package lead

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParaLead(t *testing.T) {
	t.Run("Nome_completo tem precedência sobre nome", func(t *testing.T) {
		p := webhookPayload{NomeCompleto: "Maria de Souza", Nome: "maria"}
		l := p.paraLead()
		assert.Equal(t, "Maria de Souza", l.Nome)
	})

	t.Run("Cai para nome quando Nome_completo falta", func(t *testing.T) {
		p := webhookPayload{Nome: "maria"}
		assert.Equal(t, "maria", p.paraLead().Nome)
	})

	t.Run("Sem nome nenhum usa o placeholder", func(t *testing.T) {
		p := webhookPayload{Whatsapp: "11988887777"}
		assert.Equal(t, "Lead sem Nome", p.paraLead().Nome)
	})

	t.Run("Sempre nasce NOVO", func(t *testing.T) {
		p := webhookPayload{Nome: "maria"}
		assert.Equal(t, StatusNovo, p.paraLead().Status)
	})

	t.Run("Campos extras do fluxo são ignorados sem erro", func(t *testing.T) {
		corpo := []byte(`{"Nome_completo":"Maria","placa":"ABC1D23","sessionId":"xyz","respostas":[1,2,3]}`)
		var p webhookPayload
		require.NoError(t, json.Unmarshal(corpo, &p))
		l := p.paraLead()
		assert.Equal(t, "Maria", l.Nome)
		assert.Equal(t, "ABC1D23", l.Placa)
	})
}
