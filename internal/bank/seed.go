package bank

import (
	"github.com/google/uuid"
)

// chapterOne is the bundled starter material so the tutor is useful before
// the user uploads anything of their own.
const chapterOne = `Practice Quiz for Chapter One CHAPTER ONE: INTRODUCTION

Why are reasonable security measures an evolving concept?
Reasonable security measures are considered an evolving concept primarily because technology is constantly changing. This evolution means that new ways to attack systems are continuously being discovered. The standard of reasonableness must be flexible to account for these technological changes. For example, the FTC intended for regulation to be flexible so it could regulate unfair practices involving technologies that develop in the future.

What is the security triad? What do each part of the triad mean?
The foundational security triad is CIA:
Confidentiality: The protection of data objects and resources.
Integrity: The protection of the reliability and correctness of data.
Availability: Uninterrupted, timely access to data objects and resources for appropriately authenticated and authorized users.
Resilience (often added): Ensures that systems and processes will continue to run even after a cyber attack.

What is PII?
Personally Identifiable Information. It is well known that PII, particularly Social Security numbers, is a valuable commodity and a frequent target of cyber criminals.

What are the four main types of privacy identified by the IAPP?
Decisional privacy (personal choices) and Informational privacy (controlling information).

What is the definition of cybersecurity that the book uses?
The protection of digital data, networks and machines.

What is the core responsibility of the cybersecurity professional?
First, to protect human life. Then, a risk-based approach including vulnerability analysis, security programs, monitoring, and incident response.

How is cybersecurity risk measured?
Risk = Threat x Vulnerability.
Quantitative Analysis: Uses numbers/probabilities.
Qualitative Analysis: Ranks risks (low, medium, high).

What is a vulnerability analysis?
Finding weaknesses in a system (scanning, testing) and ranking them (critical, high, medium, low).

What is a patch? What is configuration?
Patch: Software released to fix a vulnerability.
Configuration: Settings of software. Security issues can often be fixed by reconfiguring rather than patching.

What are gray hat, black hat and white hat hackers?
White hat: Security researchers/good faith testing.
Gray hat: Unaffiliated consultants, may seek payment.
Black hat: Malicious actors trying to hurt/steal.

What is cybersecurity by design?
Integrating security early in development (DevSecOps), not as an afterthought.

What is the difference between an event and an incident?
Event: Single occurrence (login).
Incident: A collection of events indicating a serious problem.

What are the steps of the NIST incident response life cycle?
1. Preparation
2. Detection and Analysis
3. Containment (Most important)
4. Eradication
5. Recovery
6. Lessons learned

Please list Equifax's cybersecurity deficiencies?
Failure to patch, failure to encrypt, sensitive data on public servers, inadequate monitoring, expired certificates, inadequate authentication.`

// Seed loads the bundled Chapter 1 reading into the store. Called at startup
// and again when the user resets the session.
func (s *Store) Seed() {
	s.mu.Lock()
	s.materials = append(s.materials, Material{
		ID:       uuid.NewString(),
		Name:     "Chapter 1: Intro Quiz & Concepts",
		Kind:     KindText,
		Category: CategoryReading,
		Text:     chapterOne,
	})
	s.mu.Unlock()
	s.notify()
}
