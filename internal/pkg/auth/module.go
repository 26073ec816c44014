package auth

import (
	"strings"

	"go.uber.org/fx"

	"github.com/vantran-dev/storefront/internal/config"
	"github.com/vantran-dev/storefront/internal/domain/model"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) TokenStrategy {
	return NewJWTStrategy(DomainsFromConfig(p.Config), Options{TTL: p.Config.TokenTTL})
}

// DomainsFromConfig builds signing domains in the configured trial order.
func DomainsFromConfig(cfg *config.Config) []SigningDomain {
	secrets := map[model.Role][]byte{
		model.RoleCustomer: []byte(cfg.CustomerTokenSecret),
		model.RoleAdmin:    []byte(cfg.AdminTokenSecret),
	}

	var domains []SigningDomain
	for _, name := range strings.Split(cfg.TokenDomainOrder, ",") {
		role := model.Role(strings.TrimSpace(name))
		if secret, ok := secrets[role]; ok {
			domains = append(domains, SigningDomain{Role: role, Secret: secret})
			delete(secrets, role)
		}
	}
	// Roles omitted from the configured order still verify, after the listed ones.
	for _, role := range []model.Role{model.RoleCustomer, model.RoleAdmin} {
		if secret, ok := secrets[role]; ok {
			domains = append(domains, SigningDomain{Role: role, Secret: secret})
		}
	}
	return domains
}
