package commands

import (
	"context"
	"log/slog"
	"strings"

	"commission-tracker/internal/domain/serial"
	"commission-tracker/internal/infra"
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/pkg/qr"
	"commission-tracker/internal/usecase/queries"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSerialExists = errs.New("serial number already registered")

type SerialCommands interface {
	Create(ctx context.Context, vendorID uuid.UUID, serialNumber string) (*queries.SerialView, error)
}

// QRGenerator renders a purchase URL as a QR image.
type QRGenerator interface {
	Generate(content string) (qr.Code, error)
}

type serialCommandsImpl struct {
	uow           shared.UnitOfWork
	qr            QRGenerator
	clock         clock.Clock
	publicBaseURL string
}

func NewSerialCommands(uow shared.UnitOfWork, qr QRGenerator, clock clock.Clock, publicBaseURL string) SerialCommands {
	return &serialCommandsImpl{
		uow:           uow,
		qr:            qr,
		clock:         clock,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (c *serialCommandsImpl) Create(ctx context.Context, vendorID uuid.UUID, serialNumber string) (*queries.SerialView, error) {
	token := serial.NewLinkToken()
	purchaseURL := serial.PurchaseURL(c.publicBaseURL, token)

	code, err := c.qr.Generate(purchaseURL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to render QR code")
	}

	s, err := serial.NewSerial(vendorID, serialNumber, token, serial.QRCode{DataURL: code.DataURL, Hash: code.Hash}, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Serials().Create(ctx, tx.DB(), s)
		return err
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrSerialExists
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, errs.ErrVendorNotFound
		}
		return nil, err
	}

	slog.Info("serial created", "serial_id", s.ID(), "vendor_id", vendorID)

	return &queries.SerialView{
		ID:           s.ID(),
		SerialNumber: s.SerialNumber(),
		LinkToken:    s.LinkToken(),
		PurchaseURL:  purchaseURL,
		QRCode:       s.QRCode().DataURL,
		QRHash:       s.QRCode().Hash,
		IsUsed:       s.IsUsed(),
		CreatedAt:    s.CreatedAt(),
	}, nil
}
