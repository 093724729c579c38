package linker

import (
	"fmt"
	"math"
	"sort"

	"github.com/teerapat-ng/docbox/constants"
	"github.com/teerapat-ng/docbox/internal/checklist"
	"github.com/teerapat-ng/docbox/internal/entity"
	"github.com/teerapat-ng/docbox/internal/normalize"
)

// Signal weights and thresholds. The numbers are additive per candidate
// and capped at maxScore.
const (
	scoreTaxIDMatch      = 50
	scoreNameMatch       = 30
	scoreAmountTight     = 25
	scoreAmountLoose     = 15
	scoreAwaitingAmount  = 20
	scoreDateNear        = 15
	scoreDateClose       = 10
	scoreFillsTaxInvoice = 20
	scoreFillsProof      = 15
	penaltyDuplicateType = 30

	nameSimilarityMin = 0.70
	amountTightRel    = 0.01
	amountLooseRel    = 0.05
	dateNearDays      = 1
	dateCloseDays     = 7

	minCandidateScore = 30
	attachThreshold   = 60
	maxScore          = 100
)

// Candidate is one open box offered to the linker, together with the
// document types already attached to it.
type Candidate struct {
	Box      entity.Box
	DocTypes []constants.DocType
}

// FindMatch scores every candidate box against a freshly extracted
// document and recommends attaching to the best one or creating a new
// box. Candidates below minCandidateScore are dropped; survivors are
// ranked by score with input order breaking ties. Ambiguity is not an
// error: middling candidates are surfaced for a human decision while
// the suggested action stays CREATE_NEW.
func FindMatch(extraction entity.Extraction, candidates []Candidate) entity.MatchResult {
	if len(candidates) == 0 {
		return entity.MatchResult{
			HasMatch:        false,
			SuggestedAction: entity.ActionCreateNew,
			Reason:          "no open boxes to compare against",
		}
	}

	matches := make([]entity.MatchCandidate, 0, len(candidates))
	for _, cand := range candidates {
		score, reasons := scoreCandidate(extraction, cand)
		if score < minCandidateScore || len(reasons) == 0 {
			continue
		}
		matches = append(matches, entity.MatchCandidate{
			BoxID:   cand.Box.ID,
			Score:   score,
			Reasons: reasons,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	result := entity.MatchResult{
		HasMatch:        len(matches) > 0,
		Matches:         matches,
		SuggestedAction: entity.ActionCreateNew,
	}
	switch {
	case len(matches) == 0:
		result.Reason = "no box scored high enough"
	case matches[0].Score >= attachThreshold:
		result.SuggestedAction = entity.ActionAttachExisting
		result.Reason = fmt.Sprintf("box %s matches with score %d", matches[0].BoxID, matches[0].Score)
	default:
		result.Reason = fmt.Sprintf("best score %d is below the attach threshold", matches[0].Score)
	}
	return result
}

func scoreCandidate(ex entity.Extraction, cand Candidate) (int, []string) {
	score := 0
	var reasons []string

	flags := checklist.DeriveAutoFlags(cand.DocTypes)

	if ex.TaxID != nil && cand.Box.ContactTaxID != "" {
		extID := normalize.DigitsOnly(*ex.TaxID)
		candID := normalize.DigitsOnly(cand.Box.ContactTaxID)
		if extID != "" && extID == candID {
			score += scoreTaxIDMatch
			reasons = append(reasons, "tax ID matches")
		}
	}

	if ex.ContactName != nil && cand.Box.ContactName != "" {
		if sim := normalize.NameSimilarity(*ex.ContactName, cand.Box.ContactName); sim >= nameSimilarityMin {
			score += scoreNameMatch
			reasons = append(reasons, fmt.Sprintf("contact name similar (%.0f%%)", sim*100))
		}
	}

	if ex.Amount != nil {
		if cand.Box.TotalAmount != 0 {
			rel := math.Abs(*ex.Amount-cand.Box.TotalAmount) / math.Abs(cand.Box.TotalAmount)
			switch {
			case rel <= amountTightRel:
				score += scoreAmountTight
				reasons = append(reasons, "amount matches within 1%")
			case rel <= amountLooseRel:
				score += scoreAmountLoose
				reasons = append(reasons, "amount matches within 5%")
			}
		} else {
			// A box opened from a payment slip often has no amount until
			// its tax invoice arrives.
			score += scoreAwaitingAmount
			reasons = append(reasons, "box has no amount recorded yet")
		}
	}

	if ex.DocumentDate != nil && !cand.Box.BoxDate.IsZero() {
		switch days := normalize.DaysApart(*ex.DocumentDate, cand.Box.BoxDate); {
		case days <= dateNearDays:
			score += scoreDateNear
			reasons = append(reasons, "dated within 1 day")
		case days <= dateCloseDays:
			score += scoreDateClose
			reasons = append(reasons, "dated within 7 days")
		}
	}

	switch {
	case ex.DocType.IsTaxInvoiceClass() && !flags.HasTaxInvoice:
		score += scoreFillsTaxInvoice
		reasons = append(reasons, "box is missing a tax invoice")
	case ex.DocType.IsTaxInvoiceClass() && flags.HasTaxInvoice:
		score -= penaltyDuplicateType
		reasons = append(reasons, "box already has a tax invoice")
	case ex.DocType.IsPaymentProofClass() && !flags.HasPaymentProof:
		score += scoreFillsProof
		reasons = append(reasons, "box is missing proof of payment")
	}

	if score > maxScore {
		score = maxScore
	}
	return score, reasons
}
