package search

import "github.com/lk16/fourway/internal/models"

// leaf returns the heuristic of a node that is not expanded any further.
func (s *Searcher) leaf(node models.State) int {
	s.stats.Leaves++
	return node.Heuristic()
}

// minimax evaluates node with alpha-beta pruning. Values returned into a maximizing
// layer are negated, values returned into a minimizing layer are not.
//
// A node without legal moves is evaluated directly. This covers terminal nodes as
// well as nodes where the color to move has to pass.
func (s *Searcher) minimax(node models.State, alpha, beta int, maximizing bool, depth int) int {
	s.stats.Nodes++

	if depth <= 0 {
		return s.leaf(node)
	}

	moves := node.LegalMoves()
	if len(moves) == 0 {
		return s.leaf(node)
	}

	if maximizing {
		value := -infinity
		for _, move := range moves {
			childValue := -s.minimax(node.Play(move), alpha, beta, false, depth-1)
			value = max(value, childValue)
			alpha = max(alpha, value)
			if beta <= alpha {
				s.stats.Cutoffs++
				break
			}
		}
		return value
	}

	value := infinity
	for _, move := range moves {
		childValue := s.minimax(node.Play(move), alpha, beta, true, depth-1)
		value = min(value, childValue)
		beta = min(beta, value)
		if beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}
	return value
}

// minimaxFull is minimax without pruning.
func (s *Searcher) minimaxFull(node models.State, maximizing bool, depth int) int {
	s.stats.Nodes++

	if depth <= 0 {
		return s.leaf(node)
	}

	moves := node.LegalMoves()
	if len(moves) == 0 {
		return s.leaf(node)
	}

	if maximizing {
		value := -infinity
		for _, move := range moves {
			value = max(value, -s.minimaxFull(node.Play(move), false, depth-1))
		}
		return value
	}

	value := infinity
	for _, move := range moves {
		value = min(value, s.minimaxFull(node.Play(move), true, depth-1))
	}
	return value
}

// negamax returns the value of node for the color to move at node.
func (s *Searcher) negamax(node models.State, alpha, beta int, depth int) int {
	s.stats.Nodes++

	if depth <= 0 {
		return s.leaf(node)
	}

	moves := node.LegalMoves()
	if len(moves) == 0 {
		return s.leaf(node)
	}

	value := -infinity
	for _, move := range moves {
		value = max(value, -s.negamax(node.Play(move), -beta, -alpha, depth-1))
		alpha = max(alpha, value)
		if alpha >= beta {
			s.stats.Cutoffs++
			break
		}
	}
	return value
}

// negamaxFull is negamax without pruning.
func (s *Searcher) negamaxFull(node models.State, depth int) int {
	s.stats.Nodes++

	if depth <= 0 {
		return s.leaf(node)
	}

	moves := node.LegalMoves()
	if len(moves) == 0 {
		return s.leaf(node)
	}

	value := -infinity
	for _, move := range moves {
		value = max(value, -s.negamaxFull(node.Play(move), depth-1))
	}
	return value
}
