package ui

import (
	"context"
	"errors"
	"fmt"
	"fxconvert/internal/domain"
	"fxconvert/internal/rate"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	MsgLoadFailed       = "Failed to fetch currency data. Please try again later."
	MsgInvalidAmount    = "Please enter a valid amount."
	MsgSelectCurrencies = "Please select both currencies."
	MsgConversionFailed = "Conversion failed. Please try again."
)

var ErrOptionNotOffered = errors.New("currency is not offered")

type CurrencyLoader interface {
	Load(ctx context.Context) ([]string, error)
}

type FlagResolver interface {
	ResolveFlagURL(currencyCode string) string
}

type Converter interface {
	Convert(ctx context.Context, source, target, amountText string) (domain.Conversion, error)
}

// Controller reacts to page events: load, selector changes and convert clicks.
// None of its event methods return errors; failures end up as notifications.
type Controller struct {
	loader    CurrencyLoader
	flags     FlagResolver
	converter Converter
	page      Page
	defaults  domain.CurrencySelection
	logger    logrus.FieldLogger

	mu      sync.Mutex
	loadSeq uint64
	convSeq uint64
	cancel  context.CancelFunc
}

func NewController(
	loader CurrencyLoader,
	flags FlagResolver,
	converter Converter,
	page Page,
	defaults domain.CurrencySelection,
	logger logrus.FieldLogger,
) *Controller {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Controller{
		loader:    loader,
		flags:     flags,
		converter: converter,
		page:      page,
		defaults:  defaults,
		logger:    logger.WithField("component", "ui"),
	}
}

// LoadCurrencies fills both selectors with the offered codes, selects the default pair
// and shows both flags. On failure the selectors stay empty and one notification is shown.
func (c *Controller) LoadCurrencies(ctx context.Context) {
	c.mu.Lock()
	c.loadSeq++
	seq := c.loadSeq
	c.resetLocked()
	c.mu.Unlock()

	codes, err := c.loader.Load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.loadSeq {
		return
	}
	if err != nil {
		c.logger.WithError(err).Error("failed to load currencies")
		c.page.Notifier.Notify(MsgLoadFailed)
		return
	}

	for _, code := range codes {
		c.page.Source.AddOption(code, code)
		c.page.Target.AddOption(code, code)
	}
	c.page.Source.SetValue(pickDefault(codes, c.defaults.Source))
	c.page.Target.SetValue(pickDefault(codes, c.defaults.Target))
	c.page.SourceFlag.SetSource(c.flags.ResolveFlagURL(c.page.Source.Value()))
	c.page.TargetFlag.SetSource(c.flags.ResolveFlagURL(c.page.Target.Value()))

	c.logger.WithField("codes", len(codes)).Info("currencies loaded")
}

func (c *Controller) resetLocked() {
	c.page.Source.ClearOptions()
	c.page.Target.ClearOptions()
	c.page.SourceFlag.SetSource("")
	c.page.TargetFlag.SetSource("")
	c.page.Result.SetText("")
}

func pickDefault(codes []string, preferred string) string {
	if slices.Contains(codes, preferred) {
		return preferred
	}
	if len(codes) == 0 {
		return ""
	}
	return codes[0]
}

// SourceChanged updates the source flag only.
func (c *Controller) SourceChanged(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.SourceFlag.SetSource(c.flags.ResolveFlagURL(code))
}

// TargetChanged updates the target flag only.
func (c *Controller) TargetChanged(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.TargetFlag.SetSource(c.flags.ResolveFlagURL(code))
}

// SelectSource selects an offered code in the source selector and fires the change event.
func (c *Controller) SelectSource(code string) error {
	if err := c.selectOption(c.page.Source, code); err != nil {
		return err
	}
	c.SourceChanged(code)
	return nil
}

// SelectTarget selects an offered code in the target selector and fires the change event.
func (c *Controller) SelectTarget(code string) error {
	if err := c.selectOption(c.page.Target, code); err != nil {
		return err
	}
	c.TargetChanged(code)
	return nil
}

func (c *Controller) selectOption(control SelectControl, code string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	offered := slices.ContainsFunc(control.Options(), func(o Option) bool { return o.Value == code })
	if !offered {
		return fmt.Errorf("%w: %q", ErrOptionNotOffered, code)
	}
	control.SetValue(code)
	return nil
}

// Selection returns the currently selected pair.
func (c *Controller) Selection() domain.CurrencySelection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.CurrencySelection{Source: c.page.Source.Value(), Target: c.page.Target.Value()}
}

// Convert runs a conversion for the given selection and renders its result.
// A newer call cancels the one in flight, whose outcome is then dropped.
func (c *Controller) Convert(ctx context.Context, selection domain.CurrencySelection, amountText string) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.convSeq++
	seq := c.convSeq
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()
	defer cancel()

	conversion, err := c.converter.Convert(ctx, selection.Source, selection.Target, amountText)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.convSeq {
		return
	}
	c.cancel = nil

	if err != nil {
		c.notifyConversionError(selection, err)
		return
	}
	c.page.Result.SetText(conversion.Text())
}

func (c *Controller) notifyConversionError(selection domain.CurrencySelection, err error) {
	switch {
	case errors.Is(err, rate.ErrInvalidAmount):
		c.page.Notifier.Notify(MsgInvalidAmount)
	case errors.Is(err, rate.ErrSourceRequired), errors.Is(err, rate.ErrTargetRequired):
		c.page.Notifier.Notify(MsgSelectCurrencies)
	case errors.Is(err, rate.ErrUnsupportedPair),
		errors.Is(err, rate.ErrSourceUnsupported),
		errors.Is(err, rate.ErrTargetUnsupported):
		c.logger.WithError(err).WithFields(logrus.Fields{"source": selection.Source, "target": selection.Target}).
			Warn("unsupported currency pair")
		c.page.Notifier.Notify(UnsupportedPairMessage(selection))
	default:
		c.logger.WithError(err).WithFields(logrus.Fields{"source": selection.Source, "target": selection.Target}).
			Error("conversion failed")
		c.page.Notifier.Notify(MsgConversionFailed)
	}
}

func UnsupportedPairMessage(selection domain.CurrencySelection) string {
	return fmt.Sprintf("Unsupported currency pair: %s/%s.", selection.Source, selection.Target)
}
