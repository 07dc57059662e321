package ledger

import (
	"context"
	"slices"

	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/orc20"
)

// inscribeUpgrade proposes new token parameters. The proposal takes effect
// once the deployer sends the inscription to the activation address.
func (s *session) inscribeUpgrade(ctx context.Context, content orc20.Content) error {
	s.tx.Method = entity.MethodInscribeUpgrade

	upgrade, err := orc20.ParseUpgrade(content)
	if err != nil {
		return s.invalid(reasonInvalidUpgrade)
	}

	token, err := s.resolveToken(ctx, upgrade.TokenRef, &s.event.BlockHeight)
	if err != nil {
		return err
	}
	if token == nil {
		return s.invalid(reasonTokenNotExists)
	}

	if _, err := s.getOrCreateBalance(ctx, s.event.To, token); err != nil {
		return err
	}

	if !token.Upgradable {
		return s.invalid(reasonNotUpgradable)
	}
	if s.event.To != token.Deployer {
		return s.invalid(reasonOnlyDeployerUpgrade)
	}
	change, err := upgrade.Resolve(token)
	if err != nil {
		return s.invalid(reasonInvalidUpgrade)
	}
	if change.Max != nil && change.Max.LessThan(token.Minted) {
		return s.invalid(reasonMaxLessThanMinted)
	}

	token.UpgradePending = append(token.UpgradePending, entity.UpgradeRecord{
		InscriptionIndex:       s.event.ID,
		InscriptionTime:        s.event.Time,
		InscriptionBlockHeight: s.event.BlockHeight,
		InscriptionID:          s.event.InscriptionID,
		InscriptionNumber:      s.event.InscriptionNumber,
		Content:                change,
	})
	s.touchToken(token)
	return s.valid()
}

// transferUpgrade activates a pending upgrade.
func (s *session) transferUpgrade(ctx context.Context, content orc20.Content) error {
	s.tx.Method = entity.MethodTransferUpgrade

	upgrade, err := orc20.ParseUpgrade(content)
	if err != nil {
		return s.invalid(reasonInvalidUpgrade)
	}

	token, err := s.resolveToken(ctx, upgrade.TokenRef, nil)
	if err != nil {
		return err
	}
	if token == nil {
		return s.invalid(reasonTokenNotExists)
	}

	i := slices.IndexFunc(token.UpgradePending, func(r entity.UpgradeRecord) bool {
		return r.InscriptionID == s.event.InscriptionID
	})
	if i < 0 {
		return s.invalid(reasonInvalidUpgradeTrans)
	}
	if s.event.From != token.Deployer || s.event.To != orc20.UpgradeActivationAddress {
		return s.invalid(reasonOnlyDeployerActivation)
	}

	index, at, height := s.event.ID, s.event.Time, s.event.BlockHeight
	applied := token.UpgradePending[i]
	applied.EffectiveIndex = &index
	applied.EffectiveTime = &at
	applied.EffectiveBlockHeight = &height

	token.UpgradePending = slices.Delete(token.UpgradePending, i, i+1)
	token.UpgradeHistory = append(token.UpgradeHistory, applied)
	applied.Content.ApplyTo(token)
	token.UpgradeTime = &at
	s.touchToken(token)
	return s.valid()
}
