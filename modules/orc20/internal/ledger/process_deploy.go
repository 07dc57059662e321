package ledger

import (
	"context"

	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/orc20"
	"github.com/shopspring/decimal"
)

func (s *session) deploy(ctx context.Context, content orc20.Content) error {
	s.tx.Method = entity.MethodInscribeDeploy

	deploy, err := orc20.ParseDeploy(content, s.event.BlockHeight, s.event.InscriptionNumber)
	if err != nil {
		return s.invalid(reasonInvalidDeploy)
	}

	existing, err := s.tokenByID(ctx, deploy.ID())
	if err != nil {
		return err
	}
	if existing != nil {
		return s.invalid(reasonTokenExists)
	}

	token := s.trackToken(&entity.Token{
		ID:                deploy.ID(),
		Tick:              deploy.Tick,
		TickID:            deploy.TickID,
		Name:              deploy.Name,
		V:                 deploy.V,
		Msg:               deploy.Msg,
		Upgradable:        deploy.Ug,
		WP:                deploy.Wp,
		Dec:               deploy.Dec,
		Max:               deploy.Max,
		Lim:               deploy.Lim,
		InscriptionID:     s.event.InscriptionID,
		InscriptionNumber: s.event.InscriptionNumber,
		Deployer:          s.event.To,
		DeployTime:        s.event.Time,
		Minted:            decimal.Zero,
	}, true)
	tokenID := token.ID
	s.tx.TokenID = &tokenID

	if _, err := s.getOrCreateBalance(ctx, s.event.To, token); err != nil {
		return err
	}
	return s.valid()
}
