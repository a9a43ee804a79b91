package decoder

// Fixed instruction for single-document analysis. The response is further
// constrained by analysisSchema; the model must answer with JSON only.
const analysisInstruction = `You are an expert legal decoder. Analyze this document and provide a deep summary.
1. PERSONA: Identify who this document targets (e.g. Student, Freelancer, Employee, Startup, Consumer).
2. SCORE: Provide a Complexity Score from 1-10.
3. MULTILINGUAL: Provide a summary in English and Hindi.
4. RISKS: Identify specific red flags (predatory clauses, hidden penalties, auto-renewals, privacy risks).
   For EACH risk:
   - Quote the specific clause.
   - Explain WHY it's risky.
   - Provide a "Suggested Safer Alternative" (Action Recommendation).
5. CARDS: Summarize key areas into cards: Termination, Payment, Liability, Data Usage, Jurisdiction.
6. JARGON: Create a dictionary of 5+ complex terms found in the text.

Return ONLY valid JSON matching the required structure.`

// Fixed instruction for two-document comparison.
const comparisonInstruction = `You are a legal comparison engine. Compare Document A (Baseline) and Document B (New).
Identify:
1. What was ADDED, REMOVED, or MODIFIED.
2. The IMPACT of each change (Positive, Negative, or Neutral).
3. A summary of how the overall risk profile has shifted.

Return ONLY valid JSON matching the required structure.`

// analysisThinkingBudget caps the pro model's internal reasoning per request.
const analysisThinkingBudget int32 = 15000
