// token emite el JWT con rol "platform" que la plataforma ERP usa para invocar los hooks.
//
// Uso: go run ./cmd/token -account TSTDRV1234567 -exp 525600
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/crm-sync-hook/pkg/config"
	"github.com/jhoicas/crm-sync-hook/pkg/jwt"
)

func main() {
	account := flag.String("account", "", "id de la cuenta ERP que invoca los hooks")
	expMinutes := flag.Int("exp", 60*24*365, "vigencia en minutos")
	flag.Parse()

	if *account == "" {
		fmt.Fprintln(os.Stderr, "-account requerido")
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, *account, jwt.RolePlatform, cfg.JWT.Issuer, *expMinutes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
