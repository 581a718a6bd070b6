package output

import (
	"io"

	"localeaudit/internal/domain/entities"
)

type Renderer interface {
	Render(w io.Writer, report *entities.Report) error
}
