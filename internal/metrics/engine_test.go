package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReturnIndexPercentage(t *testing.T) {
	tests := []struct {
		name           string
		completedYTD   int
		visitFrequency int
		currentMonth   int
		expected       int
	}{
		{
			name:           "janeiro não tem expectativa acumulada, independente da frequência",
			completedYTD:   10,
			visitFrequency: 4,
			currentMonth:   1,
			expected:       0,
		},
		{
			name:           "frequência zero não gera divisão por zero",
			completedYTD:   3,
			visitFrequency: 0,
			currentMonth:   6,
			expected:       0,
		},
		{
			name:           "cenário de março: 3 visitas feitas de 4 esperadas",
			completedYTD:   3,
			visitFrequency: 2,
			currentMonth:   3,
			expected:       75,
		},
		{
			name:           "sem teto superior: delegado acima da frequência passa de 100%",
			completedYTD:   9,
			visitFrequency: 2,
			currentMonth:   3,
			expected:       225,
		},
		{
			name:           "arredondamento para o inteiro mais próximo",
			completedYTD:   1,
			visitFrequency: 1,
			currentMonth:   4, // 1/3 = 33.33...
			expected:       33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReturnIndexPercentage(tt.completedYTD, tt.visitFrequency, tt.currentMonth)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestComplianceStatus(t *testing.T) {
	tests := []struct {
		name            string
		lastMonth       int
		monthBeforeLast int
		expected        Status
	}{
		{"visita no último mês fechado é verde", 5, 0, StatusGreen},
		{"verde prevalece mesmo com o mês retrasado visitado", 1, 3, StatusGreen},
		{"apenas o mês retrasado visitado é amarelo", 0, 2, StatusYellow},
		{"dois meses sem visita é vermelho", 0, 0, StatusRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComplianceStatus(tt.lastMonth, tt.monthBeforeLast))
		})
	}
}

// O status de assiduidade não olha para o percentual acumulado: um doutor
// com índice de retorno 0% mas visitado no mês passado continua verde.
func TestComplianceStatusIndependentOfPercentage(t *testing.T) {
	percentage := ReturnIndexPercentage(0, 2, 6)
	assert.Equal(t, 0, percentage)
	assert.Equal(t, StatusGreen, ComplianceStatus(5, 0))
}

func TestRecruitmentRhythm(t *testing.T) {
	tests := []struct {
		name          string
		achievements  []float64
		monthlyTarget float64
		currentMonth  int
		expected      int
		expectedOK    bool
	}{
		{
			name:          "histórico vazio é indefinido, não zero",
			achievements:  []float64{},
			monthlyTarget: 100,
			currentMonth:  1,
			expectedOK:    false,
		},
		{
			name:          "objetivo não positivo é indefinido",
			achievements:  []float64{50, 60},
			monthlyTarget: 0,
			currentMonth:  3,
			expectedOK:    false,
		},
		{
			name:          "mês degenerado acima de 12 é indefinido",
			achievements:  []float64{50},
			monthlyTarget: 100,
			currentMonth:  13,
			expectedOK:    false,
		},
		{
			name: "delegado atrasado em março",
			// média = 60, gap = 40, denominador = (14-3)(13-3)/2 = 55
			// raw = 40*12/55 = 8.7272... -> 9
			achievements:  []float64{50, 70},
			monthlyTarget: 100,
			currentMonth:  3,
			expected:      9,
			expectedOK:    true,
		},
		{
			name:          "delegado adiantado mostra 0, nunca negativo",
			achievements:  []float64{200, 250},
			monthlyTarget: 100,
			currentMonth:  3,
			expected:      0,
			expectedOK:    true,
		},
		{
			name: "dezembro: último mês restante",
			// denominador = (14-12)(13-12)/2 = 1, raw = (100-40)*12 = 720
			achievements:  []float64{40, 40, 40, 40, 40, 40, 40, 40, 40, 40, 40},
			monthlyTarget: 100,
			currentMonth:  12,
			expected:      720,
			expectedOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RecruitmentRhythm(tt.achievements, tt.monthlyTarget, tt.currentMonth)
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

// Varredura: nenhum par (histórico, objetivo) pode produzir ritmo negativo
func TestRecruitmentRhythmNeverNegative(t *testing.T) {
	histories := [][]float64{
		{500},
		{1000, 1000},
		{90, 110, 130},
	}
	for _, history := range histories {
		for month := 2; month <= 12; month++ {
			rhythm, ok := RecruitmentRhythm(history, 100, month)
			if ok {
				assert.GreaterOrEqual(t, rhythm, 0)
			}
		}
	}
}

func TestSalesRate(t *testing.T) {
	tests := []struct {
		name         string
		achievements []float64
		targets      []float64
		expected     float64
		expectedOK   bool
	}{
		{
			name:         "mês único com objetivo zero é indefinido, não 0%",
			achievements: []float64{50},
			targets:      []float64{0},
			expectedOK:   false,
		},
		{
			name:         "sem meses fechados é indefinido",
			achievements: []float64{},
			targets:      []float64{},
			expectedOK:   false,
		},
		{
			name:         "média simples dos meses definidos",
			achievements: []float64{50, 100},
			targets:      []float64{100, 100},
			expected:     75,
			expectedOK:   true,
		},
		{
			name: "mês sem objetivo é excluído da média, não contado como 0",
			// apenas os meses 1 e 3 entram: (50 + 150) / 2
			achievements: []float64{50, 80, 150},
			targets:      []float64{100, 0, 100},
			expected:     100,
			expectedOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SalesRate(tt.achievements, tt.targets)
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.InDelta(t, tt.expected, got, 0.0001)
			}
		})
	}
}

func TestSalesRateStatus(t *testing.T) {
	assert.Equal(t, StatusNone, SalesRateStatus(0, false))
	assert.Equal(t, StatusRed, SalesRateStatus(79.9, true))
	assert.Equal(t, StatusYellow, SalesRateStatus(80, true))
	assert.Equal(t, StatusYellow, SalesRateStatus(100, true))
	assert.Equal(t, StatusGreen, SalesRateStatus(100.1, true))
}
