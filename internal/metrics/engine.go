// Package metrics concentra as fórmulas puras do painel da força de vendas:
// índice de retorno, status de assiduidade, ritmo de recrutamento e taxa de
// realização de vendas. O pacote não conhece repositórios nem transporte;
// recebe números e devolve números.
package metrics

import "math"

// Status é o indicador colorido exibido no painel
type Status string

const (
	StatusGreen  Status = "green"
	StatusYellow Status = "yellow"
	StatusRed    Status = "red"
	// StatusNone representa métrica indefinida (exibida como "–")
	StatusNone Status = "none"
)

// ReturnIndexPercentage calcula o índice de retorno acumulado do ano.
// O mês corrente é excluído da expectativa: as visitas do mês em andamento
// ainda não venceram. Sem teto superior; um delegado acima da frequência
// pode passar de 100%.
func ReturnIndexPercentage(visitsCompletedYTD, visitFrequency, currentMonth int) int {
	expected := visitFrequency * (currentMonth - 1)
	if expected <= 0 {
		return 0
	}
	return int(math.Round(float64(visitsCompletedYTD) / float64(expected) * 100))
}

// ExpectedVisitsYTD retorna a quantidade de visitas devidas até o mês
// corrente, exclusive
func ExpectedVisitsYTD(visitFrequency, currentMonth int) int {
	expected := visitFrequency * (currentMonth - 1)
	if expected < 0 {
		return 0
	}
	return expected
}

// ComplianceStatus classifica a assiduidade de visitas de um doutor a
// partir dos dois últimos meses fechados. A avaliação é em ordem estrita e
// independente do percentual do índice de retorno: um doutor a 150% sem
// visitas nos dois últimos meses continua vermelho.
func ComplianceStatus(visitsLastMonth, visitsMonthBeforeLast int) Status {
	switch {
	case visitsLastMonth > 0:
		return StatusGreen
	case visitsMonthBeforeLast > 0:
		return StatusYellow
	default:
		return StatusRed
	}
}

// RecruitmentRhythm calcula o ritmo de recrutamento: o percentual de
// aceleração exigido para fechar a diferença entre a média realizada e o
// objetivo mensal, distribuindo o atraso pelos meses restantes com peso
// triangular (recuperar cedo vale mais que recuperar tarde).
//
// pastAchievements contém apenas os meses fechados antes do mês corrente.
// Retorna ok=false quando a métrica é indefinida: histórico vazio,
// objetivo não positivo ou denominador degenerado. Indefinido não é zero;
// o chamador deve renderizar "–".
func RecruitmentRhythm(pastAchievements []float64, monthlyTarget float64, currentMonth int) (int, bool) {
	if len(pastAchievements) == 0 || monthlyTarget <= 0 {
		return 0, false
	}

	// Peso triangular sobre os meses restantes do ano
	denominator := float64((14-currentMonth)*(13-currentMonth)) / 2
	if denominator <= 0 {
		return 0, false
	}

	var sum float64
	for _, achieved := range pastAchievements {
		sum += achieved
	}
	avgPrev := sum / float64(len(pastAchievements))

	raw := (monthlyTarget - avgPrev) * 12 / denominator

	rhythm := int(math.Round(raw))
	if rhythm < 0 {
		// Delegado já acima do objetivo: mostra 0, nunca folga negativa
		rhythm = 0
	}
	return rhythm, true
}

// SalesRate calcula a taxa média de realização dos meses fechados. Cada mês
// contribui com achievement/target×100 somente quando o objetivo daquele
// mês é positivo; meses sem objetivo são excluídos da média, não contados
// como 0%. Retorna ok=false quando nenhum mês tem objetivo definido.
func SalesRate(pastAchievements, monthlyTargets []float64) (float64, bool) {
	months := len(pastAchievements)
	if len(monthlyTargets) < months {
		months = len(monthlyTargets)
	}

	var sum float64
	var defined int
	for i := 0; i < months; i++ {
		if monthlyTargets[i] <= 0 {
			continue
		}
		sum += pastAchievements[i] / monthlyTargets[i] * 100
		defined++
	}

	if defined == 0 {
		return 0, false
	}
	return sum / float64(defined), true
}

// SalesRateStatus converte a taxa de realização no selo colorido do painel
func SalesRateStatus(rate float64, ok bool) Status {
	switch {
	case !ok:
		return StatusNone
	case rate < 80:
		return StatusRed
	case rate <= 100:
		return StatusYellow
	default:
		return StatusGreen
	}
}
