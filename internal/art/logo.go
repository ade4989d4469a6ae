package art

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/gitseed/gitseed/internal/utils"
)

func PrintLogo() {
	myFigure := figure.NewFigure("gitseed", "chunky", false)
	fmt.Fprintf(os.Stderr, "\033[32m%s\033[0m", myFigure.String())
	fmt.Fprintf(os.Stderr, "              \033[91mv%s\033[0m\n\n", utils.GetVersion())
}
