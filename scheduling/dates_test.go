package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDates(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) // sexta
	end := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)  // quinta

	// segundas e quartas dentro do período
	got := GenerateDates(start, end, []int{0, 2})
	assert.Equal(t, []string{"2024-03-04", "2024-03-06", "2024-03-11", "2024-03-13"}, got)

	// padrão que nunca bate: domingo não existe no recorte seg-qui/sex
	got = GenerateDates(start, start, []int{6})
	assert.Empty(t, got)

	// range de um dia que bate
	got = GenerateDates(start, start, []int{4})
	assert.Equal(t, []string{"2024-03-01"}, got)

	// start depois de end → nada
	got = GenerateDates(end, start, []int{0, 1, 2, 3, 4, 5, 6})
	assert.Empty(t, got)
}
