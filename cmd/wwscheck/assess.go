package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rentcheck_backend/internal/rentcheck/transport"
	"rentcheck_backend/platform/apperr"
)

const (
	formatJSON = "json"
	formatText = "text"
)

func newAssessCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "assess [request.json]",
		Short: "Assess one unit, or a batch of units under an \"items\" key",
		Long: `Assess reads a request from the given file, or from stdin when the file is
omitted or "-". A JSON object with an "items" array is treated as a batch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatJSON && format != formatText {
				return fmt.Errorf("unknown format %q, use %s or %s", format, formatJSON, formatText)
			}
			data, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return runAssess(cmd, opts, format, data)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text or json")
	return cmd
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}
	return data, nil
}

func runAssess(cmd *cobra.Command, opts *rootOptions, format string, data []byte) error {
	var probe struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	out := cmd.OutOrStdout()

	if probe.Items != nil {
		var req transport.BatchRequest
		if err := decodeStrict(data, &req); err != nil {
			return err
		}
		svc, err := opts.newService(cmd.ErrOrStderr(), len(req.Items))
		if err != nil {
			return err
		}
		resp, err := svc.AssessBatch(cmd.Context(), req)
		if err != nil {
			return describeError(err)
		}
		if format == formatJSON {
			return writeJSON(out, resp)
		}
		return writeBatchText(out, resp)
	}

	var req transport.AssessRequest
	if err := decodeStrict(data, &req); err != nil {
		return err
	}
	svc, err := opts.newService(cmd.ErrOrStderr(), 1)
	if err != nil {
		return err
	}
	resp, err := svc.Assess(cmd.Context(), req)
	if err != nil {
		return describeError(err)
	}
	if format == formatJSON {
		return writeJSON(out, resp)
	}
	return writeText(out, resp)
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

// describeError flattens field details into the message for terminal output.
func describeError(err error) error {
	var domainErr *apperr.Error
	if !errors.As(err, &domainErr) {
		return err
	}
	details, ok := domainErr.Details.([]apperr.FieldError)
	if !ok || len(details) == 0 {
		return err
	}
	var buf bytes.Buffer
	buf.WriteString(domainErr.Message)
	for _, d := range details {
		fmt.Fprintf(&buf, "\n  %s: %s", d.Field, d.Message)
	}
	return errors.New(buf.String())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeText(w io.Writer, r transport.AssessResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	b := r.Breakdown

	fmt.Fprintf(tw, "Assessment\t%s\n", r.AssessmentID)
	fmt.Fprintf(tw, "Rules\t%d\n", r.RuleYear)
	fmt.Fprintf(tw, "Housing\t%s\n", r.HousingType)
	fmt.Fprintf(tw, "Points\t%.2f (%d)\n", b.TotalPoints, b.TotalPointsRounded)
	for _, row := range []struct {
		name   string
		points float64
	}{
		{"kitchen", b.Kitchen},
		{"sanitary", b.Sanitary},
		{"surface", b.Surface},
		{"energy", b.Energy},
		{"outdoor", b.Outdoor},
		{"valuation", b.Valuation},
	} {
		fmt.Fprintf(tw, "  %s\t%.2f\n", row.name, row.points)
	}
	if b.ValuationCapApplied {
		fmt.Fprintf(tw, "  valuation cap\t%.2f of %.2f\n", b.ValuationCapLimit, b.ValuationRaw)
	}
	fmt.Fprintf(tw, "Regime\t%s\n", r.Regime)
	if r.MaxRent != nil {
		fmt.Fprintf(tw, "Max rent\t%s\n", r.MaxRent.StringFixed(2))
	}
	if r.CurrentRent != nil {
		fmt.Fprintf(tw, "Current rent\t%s\n", r.CurrentRent.StringFixed(2))
	}
	if r.Overpayment != nil && r.IsOverpaying != nil && *r.IsOverpaying {
		fmt.Fprintf(tw, "Overpayment\t%s\n", r.Overpayment.StringFixed(2))
	}
	fmt.Fprintf(tw, "Status\t%s\n", r.Status)
	return tw.Flush()
}

func writeBatchText(w io.Writer, r transport.BatchResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tpoints\tregime\tmax rent\tstatus")
	for _, item := range r.Items {
		if item.Error != nil {
			fmt.Fprintf(tw, "%d\t-\t-\t-\terror: %s\n", item.Index, item.Error.Error)
			continue
		}
		res := item.Result
		maxRent := "-"
		if res.MaxRent != nil {
			maxRent = res.MaxRent.StringFixed(2)
		}
		fmt.Fprintf(tw, "%d\t%.2f\t%s\t%s\t%s\n", item.Index, res.Breakdown.TotalPoints, res.Regime, maxRent, res.Status)
	}
	fmt.Fprintf(tw, "\n%d succeeded, %d failed\n", r.Succeeded, r.Failed)
	return tw.Flush()
}
